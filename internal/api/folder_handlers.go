package api

import (
	"encoding/json"
	"net/http"

	"docuvault/internal/hierarchy"
	_ "docuvault/internal/models"

	"github.com/go-chi/chi/v5"
)

// @Summary      Create a folder
// @Description  Creates a folder at the root or inside parent_id.
// @Tags         folders
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        folder  body      hierarchy.CreateFolderInput  true  "Folder name and optional parent"
// @Success      201     {object}  models.Folder
// @Failure      400     {object}  ProblemDetail "Invalid folder"
// @Failure      401     {object}  ProblemDetail "Unauthorized"
// @Failure      404     {object}  ProblemDetail "Parent folder not found"
// @Router       /folders [post]
func (s *Server) CreateFolderHandler(w http.ResponseWriter, r *http.Request) {
	user := GetUserFromContext(r.Context())

	var req hierarchy.CreateFolderInput
	if err := decodeJSON(r, &req); err != nil {
		s.respondErr(w, r, err)
		return
	}

	folder, err := s.hierarchy.CreateFolder(r.Context(), user.ID, req)
	if err != nil {
		s.respondErr(w, r, err)
		return
	}

	s.wsHub.Notify(user.ID, "folder_created", folder)
	RespondJSON(w, http.StatusCreated, folder)
}

// @Summary      List folders
// @Description  Lists all of the caller's folders that are not in the trash, each with its full path.
// @Tags         folders
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   models.Folder
// @Failure      401  {object}  ProblemDetail "Unauthorized"
// @Router       /folders [get]
func (s *Server) ListFoldersHandler(w http.ResponseWriter, r *http.Request) {
	user := GetUserFromContext(r.Context())

	folders, err := s.hierarchy.ListFolders(r.Context(), user.ID)
	if err != nil {
		s.respondErr(w, r, err)
		return
	}

	RespondJSON(w, http.StatusOK, folders)
}

// @Summary      Get folder contents
// @Description  Returns the folder with its direct subfolders and files that are not in the trash.
// @Tags         folders
// @Produce      json
// @Security     BearerAuth
// @Param        folderId  path      string  true  "Folder ID"
// @Success      200       {object}  models.FolderContents
// @Failure      401       {object}  ProblemDetail "Unauthorized"
// @Failure      404       {object}  ProblemDetail "Folder not found"
// @Router       /folders/{folderId} [get]
func (s *Server) GetFolderHandler(w http.ResponseWriter, r *http.Request) {
	user := GetUserFromContext(r.Context())

	contents, err := s.hierarchy.GetFolderContents(r.Context(), user.ID, chi.URLParam(r, "folderId"))
	if err != nil {
		s.respondErr(w, r, err)
		return
	}
	RespondJSON(w, http.StatusOK, contents)
}

// @Summary      Rename a folder
// @Description  Only name may be sent; anything else rejects the whole request.
// @Tags         folders
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        folderId  path      string  true  "Folder ID"
// @Param        updates   body      object  true  "Fields to change"
// @Success      200       {object}  models.Folder
// @Failure      400       {object}  ProblemDetail "Invalid updates"
// @Failure      401       {object}  ProblemDetail "Unauthorized"
// @Failure      404       {object}  ProblemDetail "Folder not found"
// @Router       /folders/{folderId} [patch]
func (s *Server) UpdateFolderHandler(w http.ResponseWriter, r *http.Request) {
	user := GetUserFromContext(r.Context())

	var fields map[string]json.RawMessage
	if err := decodeJSON(r, &fields); err != nil {
		s.respondErr(w, r, err)
		return
	}

	folder, err := s.hierarchy.UpdateFolder(r.Context(), user.ID, chi.URLParam(r, "folderId"), fields)
	if err != nil {
		s.respondErr(w, r, err)
		return
	}

	s.wsHub.Notify(user.ID, "folder_updated", folder)
	RespondJSON(w, http.StatusOK, folder)
}

// @Summary      Move a folder to the trash
// @Description  Soft-deletes the folder together with every subfolder and file beneath it.
// @Tags         folders
// @Produce      json
// @Security     BearerAuth
// @Param        folderId  path      string  true  "Folder ID"
// @Success      200       {object}  models.Folder
// @Failure      401       {object}  ProblemDetail "Unauthorized"
// @Failure      404       {object}  ProblemDetail "Folder not found"
// @Router       /folders/{folderId} [delete]
func (s *Server) TrashFolderHandler(w http.ResponseWriter, r *http.Request) {
	user := GetUserFromContext(r.Context())

	folder, err := s.hierarchy.TrashFolder(r.Context(), user.ID, chi.URLParam(r, "folderId"))
	if err != nil {
		s.respondErr(w, r, err)
		return
	}

	s.wsHub.Notify(user.ID, "folder_trashed", folder)
	RespondJSON(w, http.StatusOK, folder)
}

// @Summary      Restore a folder from the trash
// @Description  Restores the folder together with every subfolder and file beneath it.
// @Tags         folders
// @Produce      json
// @Security     BearerAuth
// @Param        folderId  path      string  true  "Folder ID"
// @Success      200       {object}  models.Folder
// @Failure      401       {object}  ProblemDetail "Unauthorized"
// @Failure      404       {object}  ProblemDetail "Folder not found in trash"
// @Router       /folders/{folderId}/restore [post]
func (s *Server) RestoreFolderHandler(w http.ResponseWriter, r *http.Request) {
	user := GetUserFromContext(r.Context())

	folder, err := s.hierarchy.RestoreFolder(r.Context(), user.ID, chi.URLParam(r, "folderId"))
	if err != nil {
		s.respondErr(w, r, err)
		return
	}

	s.wsHub.Notify(user.ID, "folder_restored", folder)
	RespondJSON(w, http.StatusOK, folder)
}
