package dto

import "forumapi/src/core/domain"

type AddedUserData struct {
	AddedUser *domain.RegisteredUser `json:"addedUser"`
}

type AccessTokenData struct {
	AccessToken string `json:"accessToken"`
}

type AddedThreadData struct {
	AddedThread *domain.AddedThread `json:"addedThread"`
}

type ThreadData struct {
	Thread *domain.ThreadDetail `json:"thread"`
}

type AddedCommentData struct {
	AddedComment *domain.AddedComment `json:"addedComment"`
}
