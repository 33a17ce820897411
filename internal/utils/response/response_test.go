package response

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteJSON(t *testing.T) {
	w := httptest.NewRecorder()

	require.NoError(t, WriteJSON(w, http.StatusCreated, map[string]int64{"id": 3}))

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"id":3}`, w.Body.String())
}

func TestGeneralError(t *testing.T) {
	resp := GeneralError(errors.New("request body is empty"))

	out, err := json.Marshal(resp)
	require.NoError(t, err)
	assert.JSONEq(t, `{"status":"error","error":"request body is empty"}`, string(out))
}

func TestValidationError(t *testing.T) {
	type payload struct {
		Name    string `validate:"required"`
		Contact *int64 `validate:"required"`
		Code    string `validate:"len=3"`
	}

	err := validator.New().Struct(payload{Code: "x"})
	var errs validator.ValidationErrors
	require.ErrorAs(t, err, &errs)

	resp := ValidationError(errs)

	assert.Equal(t, StatusError, resp.Status)
	assert.Equal(t,
		"field Name is required, field Contact is required, field Code is invalid",
		resp.Error)
}
