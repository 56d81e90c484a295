// Package response provides helpers for writing consistent JSON HTTP responses.
//
// Error responses always look like:
//
//	{ "error": "User not found." }
//
// Successful mutations carry a confirmation message and, except for delete,
// the affected user:
//
//	{ "message": "User created successfully.", "user": { ... } }
package response

import (
	"encoding/json"
	"net/http"

	"github.com/aanand-mishra/users-api/internal/types"
	"github.com/go-playground/validator/v10"
)

// Client-facing messages.
const (
	MsgFieldsRequired = "Name, email, and age are required."
	MsgInvalidEmail   = "Invalid email format."
	MsgUserNotFound   = "User not found."

	MsgUserCreated = "User created successfully."
	MsgUserUpdated = "User updated successfully."
	MsgUserDeleted = "User deleted successfully."
)

// Response is the error envelope.
type Response struct {
	Error string `json:"error"`
}

// Message is the envelope for successful create, update and delete.
type Message struct {
	Message string      `json:"message"`
	User    *types.User `json:"user,omitempty"`
}

// WriteJSON sets the content type, writes status, then encodes data as the body.
// Headers must be set before WriteHeader; after it they are locked.
func WriteJSON(w http.ResponseWriter, status int, data any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(data)
}

// GeneralError wraps any Go error into the error envelope. Use it for decode
// failures and unexpected storage errors.
func GeneralError(err error) Response {
	return Response{Error: err.Error()}
}

// Error wraps a fixed client-facing message into the error envelope.
func Error(msg string) Response {
	return Response{Error: msg}
}

// ValidationError turns validator field errors into a single message.
//
// A missing field wins over a malformed email: the client is told about
// required fields first, and only once all three are present about the email
// shape.
func ValidationError(errs validator.ValidationErrors) Response {
	for _, e := range errs {
		if e.ActualTag() == "required" {
			return Error(MsgFieldsRequired)
		}
	}

	for _, e := range errs {
		if e.ActualTag() == "emailshape" {
			return Error(MsgInvalidEmail)
		}
	}

	// Any other tag: report the first failing field.
	if len(errs) > 0 {
		return Error("field " + errs[0].Field() + " is invalid")
	}
	return Error("invalid request")
}

// Created builds the body for a successful create.
func Created(user types.User) Message {
	return Message{Message: MsgUserCreated, User: &user}
}

// Updated builds the body for a successful update.
func Updated(user types.User) Message {
	return Message{Message: MsgUserUpdated, User: &user}
}

// Deleted builds the body for a successful delete.
func Deleted() Message {
	return Message{Message: MsgUserDeleted}
}
