package api

import (
	"encoding/json"
	"errors"
	"io"
	"mime"
	"net/http"
	"strconv"

	"docuvault/internal/hierarchy"
	"docuvault/internal/models"

	"github.com/gabriel-vasile/mimetype"
	"github.com/go-chi/chi/v5"
)

const multipartMemory = 32 << 20

// @Summary      Upload a file
// @Description  Uploads a file as multipart/form-data, optionally into a folder and under a custom name.
// @Tags         files
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        file       formData  file    true   "File to upload"
// @Param        name       formData  string  false  "Display name, defaults to the uploaded file name"
// @Param        folder_id  formData  string  false  "Target folder"
// @Success      201        {object}  models.File
// @Failure      400        {object}  ProblemDetail "Invalid form data"
// @Failure      401        {object}  ProblemDetail "Unauthorized"
// @Failure      404        {object}  ProblemDetail "Folder not found"
// @Failure      413        {object}  ProblemDetail "File too large"
// @Failure      500        {object}  ProblemDetail
// @Router       /files/upload [post]
func (s *Server) UploadFileHandler(w http.ResponseWriter, r *http.Request) {
	user := GetUserFromContext(r.Context())

	r.Body = http.MaxBytesReader(w, r.Body, s.config.Upload.MaxBytes)

	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			RespondError(w, http.StatusRequestEntityTooLarge, "file exceeds the upload limit of "+strconv.FormatInt(tooLarge.Limit, 10)+" bytes")
			return
		}
		RespondError(w, http.StatusBadRequest, "invalid multipart form")
		return
	}
	defer r.MultipartForm.RemoveAll()

	file, header, err := r.FormFile("file")
	if err != nil {
		RespondError(w, http.StatusBadRequest, "file is required")
		return
	}
	defer file.Close()

	contentType := header.Header.Get("Content-Type")
	if contentType == "" || contentType == "application/octet-stream" {
		detected, err := mimetype.DetectReader(file)
		if err != nil {
			s.respondErr(w, r, err)
			return
		}
		contentType = detected.String()
		if _, err := file.Seek(0, io.SeekStart); err != nil {
			s.respondErr(w, r, err)
			return
		}
	}

	var folderID *string
	if v := r.FormValue("folder_id"); v != "" {
		folderID = &v
	}

	created, err := s.hierarchy.UploadFile(r.Context(), user.ID, hierarchy.UploadInput{
		Name:         r.FormValue("name"),
		OriginalName: header.Filename,
		FolderID:     folderID,
		SizeBytes:    header.Size,
		MimeType:     contentType,
		Body:         file,
	})
	if err != nil {
		s.respondErr(w, r, err)
		return
	}

	s.wsHub.Notify(user.ID, "file_uploaded", created)
	RespondJSON(w, http.StatusCreated, created)
}

// @Summary      List files
// @Description  Lists the caller's files that are not in the trash.
// @Tags         files
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   models.File
// @Failure      401  {object}  ProblemDetail "Unauthorized"
// @Failure      500  {object}  ProblemDetail
// @Router       /files [get]
func (s *Server) ListFilesHandler(w http.ResponseWriter, r *http.Request) {
	user := GetUserFromContext(r.Context())

	files, err := s.hierarchy.ListFiles(r.Context(), user.ID)
	if err != nil {
		s.respondErr(w, r, err)
		return
	}

	RespondJSON(w, http.StatusOK, files)
}

// @Summary      Get file metadata
// @Tags         files
// @Produce      json
// @Security     BearerAuth
// @Param        fileId  path      string  true  "File ID"
// @Success      200     {object}  models.File
// @Failure      401     {object}  ProblemDetail "Unauthorized"
// @Failure      404     {object}  ProblemDetail "File not found"
// @Router       /files/{fileId} [get]
func (s *Server) GetFileHandler(w http.ResponseWriter, r *http.Request) {
	user := GetUserFromContext(r.Context())

	file, err := s.hierarchy.GetFile(r.Context(), user.ID, chi.URLParam(r, "fileId"))
	if err != nil {
		s.respondErr(w, r, err)
		return
	}

	RespondJSON(w, http.StatusOK, file)
}

// @Summary      Update a file
// @Description  Renames, moves or (un)favourites a file. Only name, folder_id and is_favorite may be sent; anything else rejects the whole request.
// @Tags         files
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        fileId   path      string  true  "File ID"
// @Param        updates  body      object  true  "Fields to change"
// @Success      200      {object}  models.File
// @Failure      400      {object}  ProblemDetail "Invalid updates"
// @Failure      401      {object}  ProblemDetail "Unauthorized"
// @Failure      404      {object}  ProblemDetail "File not found"
// @Router       /files/{fileId} [patch]
func (s *Server) UpdateFileHandler(w http.ResponseWriter, r *http.Request) {
	user := GetUserFromContext(r.Context())

	var fields map[string]json.RawMessage
	if err := decodeJSON(r, &fields); err != nil {
		s.respondErr(w, r, err)
		return
	}

	file, err := s.hierarchy.UpdateFile(r.Context(), user.ID, chi.URLParam(r, "fileId"), fields)
	if err != nil {
		s.respondErr(w, r, err)
		return
	}

	s.wsHub.Notify(user.ID, "file_updated", file)
	RespondJSON(w, http.StatusOK, file)
}

// @Summary      Move a file to the trash
// @Tags         files
// @Produce      json
// @Security     BearerAuth
// @Param        fileId  path      string  true  "File ID"
// @Success      200     {object}  models.File
// @Failure      401     {object}  ProblemDetail "Unauthorized"
// @Failure      404     {object}  ProblemDetail "File not found"
// @Router       /files/{fileId} [delete]
func (s *Server) TrashFileHandler(w http.ResponseWriter, r *http.Request) {
	user := GetUserFromContext(r.Context())

	file, err := s.hierarchy.TrashFile(r.Context(), user.ID, chi.URLParam(r, "fileId"))
	if err != nil {
		s.respondErr(w, r, err)
		return
	}

	s.wsHub.Notify(user.ID, "file_trashed", file)
	RespondJSON(w, http.StatusOK, file)
}

// @Summary      Restore a file from the trash
// @Tags         files
// @Produce      json
// @Security     BearerAuth
// @Param        fileId  path      string  true  "File ID"
// @Success      200     {object}  models.File
// @Failure      401     {object}  ProblemDetail "Unauthorized"
// @Failure      404     {object}  ProblemDetail "File not found in trash"
// @Router       /files/{fileId}/restore [post]
func (s *Server) RestoreFileHandler(w http.ResponseWriter, r *http.Request) {
	user := GetUserFromContext(r.Context())

	file, err := s.hierarchy.RestoreFile(r.Context(), user.ID, chi.URLParam(r, "fileId"))
	if err != nil {
		s.respondErr(w, r, err)
		return
	}

	s.wsHub.Notify(user.ID, "file_restored", file)
	RespondJSON(w, http.StatusOK, file)
}

// @Summary      Download a file
// @Tags         files
// @Produce      application/octet-stream
// @Security     BearerAuth
// @Param        fileId  path      string  true  "File ID"
// @Success      200     {file}    file
// @Failure      401     {object}  ProblemDetail "Unauthorized"
// @Failure      404     {object}  ProblemDetail "File not found"
// @Router       /files/{fileId}/download [get]
func (s *Server) DownloadFileHandler(w http.ResponseWriter, r *http.Request) {
	user := GetUserFromContext(r.Context())

	file, content, err := s.hierarchy.OpenFile(r.Context(), user.ID, chi.URLParam(r, "fileId"))
	if err != nil {
		s.respondErr(w, r, err)
		return
	}
	defer content.Close()

	s.streamFile(w, r, file, content)
}

func (s *Server) streamFile(w http.ResponseWriter, r *http.Request, file *models.File, content io.Reader) {
	contentType := file.MimeType
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	// Downloads are offered under the name the file was uploaded with.
	filename := file.OriginalName
	if filename == "" {
		filename = file.Name
	}
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": filename}))
	w.Header().Set("Content-Length", strconv.FormatInt(file.SizeBytes, 10))

	if _, err := io.Copy(w, content); err != nil {
		s.logger.Warn("file download interrupted", "file_id", file.ID, "error", err)
	}
}
