// Package state holds the client-side store: pure reducers over actions and a
// store that owns the current state and the alert timers.
package state

import (
	"devconnector/internal/models"

	"github.com/google/uuid"
)

// Action types.
const (
	SetAlertAction    = "SET_ALERT"
	RemoveAlertAction = "REMOVE_ALERT"

	RegisterSuccess = "REGISTER_SUCCESS"
	RegisterFail    = "REGISTER_FAIL"
	LoginSuccess    = "LOGIN_SUCCESS"
	LoginFail       = "LOGIN_FAIL"
	UserLoaded      = "USER_LOADED"
	AuthError       = "AUTH_ERROR"
	Logout          = "LOGOUT"

	GetPosts    = "GET_POSTS"
	GetPost     = "GET_POST"
	AddPost     = "ADD_POST"
	DeletePost  = "DELETE_POST"
	PostError   = "POST_ERROR"
	UpdateLikes = "UPDATE_LIKES"
)

// Action is dispatched to the store. Payload type depends on Type:
//
//	SET_ALERT                        Alert
//	REMOVE_ALERT                     uuid.UUID
//	REGISTER_SUCCESS, LOGIN_SUCCESS  models.AuthResponse
//	USER_LOADED                      *models.User
//	GET_POSTS                        []models.Post
//	GET_POST, ADD_POST               *models.Post
//	DELETE_POST                      uuid.UUID
//	POST_ERROR                       RequestError
//	UPDATE_LIKES                     LikesUpdate
type Action struct {
	Type    string
	Payload any
}

// Alert is a transient message shown to the user.
type Alert struct {
	ID        uuid.UUID `json:"id"`
	Msg       string    `json:"msg"`
	AlertType string    `json:"alertType"`
}

// LikesUpdate replaces the likes of one post in the list.
type LikesUpdate struct {
	ID    uuid.UUID
	Likes []models.Like
}

// RequestError is the failure recorded by POST_ERROR.
type RequestError struct {
	Msg    string `json:"msg"`
	Status int    `json:"status"`
}
