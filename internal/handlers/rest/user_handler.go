package rest

import (
	"errors"
	"io"
	"mime"
	"net/http"
	"strings"

	"github.com/KirkDiggler/buddyup/internal/services/user"
	"github.com/gorilla/mux"
)

// maxUploadBytes leaves room for multipart framing around the image
const maxUploadBytes = user.MaxImageBytes + 1<<20

type usernamesResponse struct {
	Usernames []*string `json:"usernames"`
}

func (h *Handler) getUser(w http.ResponseWriter, r *http.Request) {
	out, err := h.userService.GetUser(r.Context(), &user.GetUserInput{
		UserID: mux.Vars(r)["id"],
	})
	if err != nil {
		respondWithServiceError(w, h.logger, err)
		return
	}

	RespondWithJSON(w, http.StatusOK, out.User)
}

func (h *Handler) usernames(w http.ResponseWriter, r *http.Request) {
	out, err := h.userService.UsernamesByIDs(r.Context(), &user.UsernamesByIDsInput{
		UserIDs: strings.Split(r.URL.Query().Get("participants"), ","),
	})
	if err != nil {
		respondWithServiceError(w, h.logger, err)
		return
	}

	RespondWithJSON(w, http.StatusOK, usernamesResponse{Usernames: out.Usernames})
}

func (h *Handler) updateProfile(w http.ResponseWriter, r *http.Request) {
	fields, err := parseProfileFields(r)
	if err != nil {
		RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	out, err := h.userService.UpdateProfile(r.Context(), &user.UpdateProfileInput{
		CallerID: UserIDFromContext(r.Context()),
		TargetID: mux.Vars(r)["id"],
		Fields:   *fields,
	})
	if err != nil {
		respondWithServiceError(w, h.logger, err)
		return
	}

	RespondWithJSON(w, http.StatusOK, out.User)
}

// parseProfileFields accepts a JSON body or form fields; absent keys stay nil
func parseProfileFields(r *http.Request) (*user.ProfileFields, error) {
	fields := &user.ProfileFields{}

	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	switch mediaType {
	case "application/json":
		if err := parseJSONBody(r, fields); err != nil {
			return nil, err
		}
		return fields, nil
	case "multipart/form-data":
		if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
			return nil, err
		}
	default:
		if err := r.ParseForm(); err != nil {
			return nil, err
		}
	}

	form := r.PostForm
	if form.Has("email") {
		v := form.Get("email")
		fields.Email = &v
	}
	if form.Has("location") {
		v := form.Get("location")
		fields.Location = &v
	}
	if form.Has("bio") {
		v := form.Get("bio")
		fields.Bio = &v
	}
	if form.Has("interests") {
		var interests []string
		for _, raw := range form["interests"] {
			for _, name := range strings.Split(raw, ",") {
				if name = strings.TrimSpace(name); name != "" {
					interests = append(interests, name)
				}
			}
		}
		fields.Interests = &interests
	}

	return fields, nil
}

func (h *Handler) uploadProfileImage(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)

	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			respondWithServiceError(w, h.logger, user.ErrImageTooLarge)
			return
		}
		respondWithServiceError(w, h.logger, user.ErrMissingImage)
		return
	}

	file, header, err := r.FormFile("profile_image")
	if err != nil {
		respondWithServiceError(w, h.logger, user.ErrMissingImage)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		RespondWithError(w, http.StatusBadRequest, "Could not read upload")
		return
	}

	out, err := h.userService.UploadProfileImage(r.Context(), &user.UploadProfileImageInput{
		CallerID:    UserIDFromContext(r.Context()),
		ContentType: header.Header.Get("Content-Type"),
		Data:        data,
	})
	if err != nil {
		respondWithServiceError(w, h.logger, err)
		return
	}

	RespondWithJSON(w, http.StatusOK, out.User)
}

func (h *Handler) getProfileImage(w http.ResponseWriter, r *http.Request) {
	out, err := h.userService.GetProfileImage(r.Context(), &user.GetProfileImageInput{
		UserID: mux.Vars(r)["id"],
	})
	if err != nil {
		respondWithServiceError(w, h.logger, err)
		return
	}

	w.Header().Set("Content-Type", out.ContentType)
	w.Header().Set("Cache-Control", "public, max-age=300")
	w.WriteHeader(http.StatusOK)
	w.Write(out.Data)
}
