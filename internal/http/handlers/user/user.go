// Package user contains the HTTP handlers for the User resource.
//
// Each handler is a factory: it receives the storage once at route
// registration and returns the http.HandlerFunc the router calls on every
// request.
//
//	router.HandleFunc("POST /users", user.New(storage))
package user

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/aanand-mishra/users-api/internal/storage"
	"github.com/aanand-mishra/users-api/internal/types"
	"github.com/aanand-mishra/users-api/internal/utils/response"
	"github.com/go-playground/validator/v10"
)

// Register mounts every user route on router.
//
//	POST   /users        create a user
//	GET    /users        list all users
//	GET    /users/{id}   get one user
//	PUT    /users/{id}   replace a user
//	DELETE /users/{id}   delete a user
func Register(router *http.ServeMux, storage storage.Storage) {
	router.HandleFunc("POST /users", New(storage))
	router.HandleFunc("GET /users", GetList(storage))
	router.HandleFunc("GET /users/{id}", GetByID(storage))
	router.HandleFunc("PUT /users/{id}", Update(storage))
	router.HandleFunc("DELETE /users/{id}", Delete(storage))
}

// ─────────────────────────────────────────────────────────────────────────────
// New handles POST /users
//
// Request body:
//
//	{ "name": "Rakesh", "email": "rakesh@test.com", "age": 35 }
//
// Success (201 Created):
//
//	{ "message": "User created successfully.", "user": { "id": "…", … } }
//
// Errors: 400 for an empty or malformed body, a missing field, or a bad email.
// ─────────────────────────────────────────────────────────────────────────────
func New(storage storage.Storage) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slog.Info("creating a user")

		input, ok := decodeInput(w, r)
		if !ok {
			return
		}

		user, err := storage.CreateUser(input)
		if err != nil {
			slog.Error("error creating user", slog.String("error", err.Error()))
			response.WriteJSON(w, http.StatusInternalServerError, response.GeneralError(err))
			return
		}

		slog.Info("user created", slog.String("id", user.ID))
		logUsers(storage)

		response.WriteJSON(w, http.StatusCreated, response.Created(user))
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// GetList handles GET /users
// Returns every user in insertion order.
//
// Success (200 OK):
//
//	[ { "id": "…", "name": "Rakesh", … }, … ]
//
// Returns an empty array [] (not null) when there are no users.
// ─────────────────────────────────────────────────────────────────────────────
func GetList(storage storage.Storage) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slog.Info("getting all users")

		users, err := storage.GetUsers()
		if err != nil {
			slog.Error("error getting users", slog.String("error", err.Error()))
			response.WriteJSON(w, http.StatusInternalServerError, response.GeneralError(err))
			return
		}

		slog.Debug("users", slog.Any("users", users))

		response.WriteJSON(w, http.StatusOK, users)
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// GetByID handles GET /users/{id}
// Fetches a single user by id.
//
// Success (200 OK):
//
//	{ "id": "…", "name": "Rakesh", "email": "rakesh@test.com", "age": 35 }
//
// Errors: 404 when no user has that id.
// ─────────────────────────────────────────────────────────────────────────────
func GetByID(storage storage.Storage) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")
		slog.Info("getting a user", slog.String("id", id))

		user, err := storage.GetUserByID(id)
		if err != nil {
			writeStorageError(w, "error getting user", id, err)
			return
		}

		logUsers(storage)

		response.WriteJSON(w, http.StatusOK, user)
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Update handles PUT /users/{id}
// Replaces ALL fields of an existing user; the id in the path is
// authoritative and any "id" in the body is ignored.
//
// Request body: same as New.
//
// Success (200 OK):
//
//	{ "message": "User updated successfully.", "user": { … } }
//
// Errors: 404 when no user has that id, checked before the body is even
// read, so an unknown id is a 404 whatever the body contains. Otherwise 400
// as for New.
// ─────────────────────────────────────────────────────────────────────────────
func Update(storage storage.Storage) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")
		slog.Info("updating a user", slog.String("id", id))

		if _, err := storage.GetUserByID(id); err != nil {
			writeStorageError(w, "error updating user", id, err)
			return
		}

		input, ok := decodeInput(w, r)
		if !ok {
			return
		}

		// The store checks existence again under its own lock, so a delete
		// that lands between the two calls still yields a 404.
		user, err := storage.UpdateUserByID(id, input)
		if err != nil {
			writeStorageError(w, "error updating user", id, err)
			return
		}

		slog.Info("user updated", slog.String("id", id))
		logUsers(storage)

		response.WriteJSON(w, http.StatusOK, response.Updated(user))
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Delete handles DELETE /users/{id}
// Permanently removes a user.
//
// Success (200 OK):
//
//	{ "message": "User deleted successfully." }
//
// Errors: 404 when no user has that id.
// ─────────────────────────────────────────────────────────────────────────────
func Delete(storage storage.Storage) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")
		slog.Info("deleting a user", slog.String("id", id))

		if err := storage.DeleteUserByID(id); err != nil {
			writeStorageError(w, "error deleting user", id, err)
			return
		}

		slog.Info("user deleted", slog.String("id", id))
		logUsers(storage)

		response.WriteJSON(w, http.StatusOK, response.Deleted())
	}
}

// decodeInput reads and validates the request body. On failure it has already
// written the 400 response and returns false.
func decodeInput(w http.ResponseWriter, r *http.Request) (types.UserInput, bool) {
	var input types.UserInput

	err := json.NewDecoder(r.Body).Decode(&input)
	if errors.Is(err, io.EOF) {
		response.WriteJSON(w, http.StatusBadRequest,
			response.GeneralError(errors.New("request body is empty")))
		return input, false
	}
	if err != nil {
		response.WriteJSON(w, http.StatusBadRequest, response.GeneralError(err))
		return input, false
	}

	if err := validateInput(input); err != nil {
		var validateErrs validator.ValidationErrors
		if errors.As(err, &validateErrs) {
			response.WriteJSON(w, http.StatusBadRequest, response.ValidationError(validateErrs))
			return input, false
		}
		response.WriteJSON(w, http.StatusBadRequest, response.GeneralError(err))
		return input, false
	}

	return input, true
}

// writeStorageError maps storage.ErrNotFound to 404 and anything else to 500.
func writeStorageError(w http.ResponseWriter, msg, id string, err error) {
	if errors.Is(err, storage.ErrNotFound) {
		response.WriteJSON(w, http.StatusNotFound, response.Error(response.MsgUserNotFound))
		return
	}

	slog.Error(msg, slog.String("id", id), slog.String("error", err.Error()))
	response.WriteJSON(w, http.StatusInternalServerError, response.GeneralError(err))
}

// logUsers dumps the whole collection at debug level after each operation.
func logUsers(storage storage.Storage) {
	if !slog.Default().Enabled(context.Background(), slog.LevelDebug) {
		return
	}

	users, err := storage.GetUsers()
	if err != nil {
		slog.Warn("cannot list users for debug log", slog.String("error", err.Error()))
		return
	}
	slog.Debug("users", slog.Any("users", users))
}
