// Package school contains the HTTP handlers for the School resource.
//
// Handlers are built with the factory pattern: the router needs a
// func(http.ResponseWriter, *http.Request), so each exported function
// takes its dependencies and returns a closure over them.
//
//	router.HandleFunc("POST /api/schools/create/{$}", school.New(storage, log))
//	//                                                 ^^^^^^^^^^^^^^^^^^^^
//	//                 called once at startup; the returned func runs per request.
package school

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"reflect"
	"strings"

	"github.com/aanand-mishra/schools-directory/internal/storage"
	"github.com/aanand-mishra/schools-directory/internal/types"
	"github.com/aanand-mishra/schools-directory/internal/utils/response"
	"github.com/go-playground/validator/v10"
)

// validate reports fields by their JSON name, the name API clients see.
var validate = func() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		return strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	})
	return v
}()

// New handles POST /api/schools/create/.
//
// Request body (JSON):
//
//	{ "name": "Alpha High", "address": "1 Main Rd", "city": "Pune",
//	  "state": "MH", "contact": 9876543210, "image": "", "email_id": "a@b.com" }
//
// Success response (201 Created): the stored school, including its id.
//
// Error responses:
//
//	400 Bad Request  empty body, malformed JSON, or failed validation
//	500 Internal     database error
func New(storage storage.Storage, log *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log.Info("creating a school")

		var req types.CreateSchoolRequest
		err := json.NewDecoder(r.Body).Decode(&req)
		if errors.Is(err, io.EOF) {
			response.WriteJSON(w, http.StatusBadRequest,
				response.GeneralError(errors.New("request body is empty")))
			return
		}
		if err != nil {
			response.WriteJSON(w, http.StatusBadRequest, response.GeneralError(err))
			return
		}

		// Surrounding whitespace is not stored, and a whitespace-only
		// value counts as missing.
		req = trim(req)

		if err := validate.Struct(req); err != nil {
			var validateErrs validator.ValidationErrors
			if !errors.As(err, &validateErrs) {
				response.WriteJSON(w, http.StatusBadRequest, response.GeneralError(err))
				return
			}
			response.WriteJSON(w, http.StatusBadRequest,
				response.ValidationError(validateErrs))
			return
		}

		school := req.School()
		id, err := storage.CreateSchool(school)
		if err != nil {
			log.Error("error creating school", slog.String("error", err.Error()))
			response.WriteJSON(w, http.StatusInternalServerError,
				response.GeneralError(err))
			return
		}
		school.ID = id

		log.Info("school created", slog.Int64("id", id))
		response.WriteJSON(w, http.StatusCreated, school)
	}
}

// GetList handles GET /api/schools/.
//
// Success response (200 OK): a JSON array of schools, [] when empty.
func GetList(storage storage.Storage, log *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log.Info("getting all schools")

		schools, err := storage.GetSchools()
		if err != nil {
			log.Error("error getting schools", slog.String("error", err.Error()))
			response.WriteJSON(w, http.StatusInternalServerError,
				response.GeneralError(err))
			return
		}
		if schools == nil {
			schools = []types.School{}
		}

		response.WriteJSON(w, http.StatusOK, schools)
	}
}

func trim(req types.CreateSchoolRequest) types.CreateSchoolRequest {
	req.Name = strings.TrimSpace(req.Name)
	req.Address = strings.TrimSpace(req.Address)
	req.City = strings.TrimSpace(req.City)
	req.State = strings.TrimSpace(req.State)
	req.Image = strings.TrimSpace(req.Image)
	req.EmailID = strings.TrimSpace(req.EmailID)
	return req
}
