package response

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/aanand-mishra/users-api/internal/types"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteJSON(t *testing.T) {
	rec := httptest.NewRecorder()

	require.NoError(t, WriteJSON(rec, http.StatusTeapot, GeneralError(errors.New("boom"))))

	assert.Equal(t, http.StatusTeapot, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"error":"boom"}`, rec.Body.String())
}

func TestMessageShapes(t *testing.T) {
	user := types.User{ID: "u1", Name: "A", Email: "a@b.co", Age: types.NumericAge(30)}

	rec := httptest.NewRecorder()
	require.NoError(t, WriteJSON(rec, http.StatusCreated, Created(user)))
	assert.JSONEq(t,
		`{"message":"User created successfully.","user":{"id":"u1","name":"A","email":"a@b.co","age":30}}`,
		rec.Body.String())

	rec = httptest.NewRecorder()
	require.NoError(t, WriteJSON(rec, http.StatusOK, Deleted()))
	assert.JSONEq(t, `{"message":"User deleted successfully."}`, rec.Body.String())
}

func TestValidationError(t *testing.T) {
	type input struct {
		Name  string `validate:"required"`
		Email string `validate:"required,email"`
		Code  string `validate:"len=3"`
	}

	validationErrs := func(in input) validator.ValidationErrors {
		var errs validator.ValidationErrors
		require.True(t, errors.As(validator.New().Struct(in), &errs))
		return errs
	}

	assert.Equal(t, Error(MsgFieldsRequired),
		ValidationError(validationErrs(input{Email: "x", Code: "abc"})))

	assert.Equal(t, Response{Error: "field Email is invalid"},
		ValidationError(validationErrs(input{Name: "A", Email: "x", Code: "abc"})))
}
