package handler

import (
	"errors"
	"net/http"

	chi "github.com/go-chi/chi/v5"
	"github.com/reactpress/reactpress/internal/model"
	"github.com/reactpress/reactpress/internal/service"
	"github.com/reactpress/reactpress/pkg/httputils"
	"github.com/reactpress/reactpress/pkg/paginationutils"
	"go.uber.org/fx"
)

// Uploads buffer up to 32 MiB in memory, the rest spills to temp files.
const UPLOAD_MEMORY_LIMIT = 32 << 20

type fileHandler struct {
	fileService *service.FileService
}

type getFilesResponse struct {
	Files []model.File                     `json:"files"`
	Pages []paginationutils.PaginationLink `json:"pages"`
}

func (hand *fileHandler) GetFiles(w http.ResponseWriter, r *http.Request) {
	page, err := getPageQuery(r, service.DEFAULT_PAGE)
	if err != nil {
		fileErrHandler(w, err)
		return
	}

	pageSize, err := getPageSizeQuery(r, service.DEFAULT_PAGE_SIZE)
	if err != nil {
		fileErrHandler(w, err)
		return
	}

	files, err := hand.fileService.GetFiles(r.Context(), service.GetFilesParams{
		Page:     page,
		PageSize: pageSize,
	})
	if err != nil {
		fileErrHandler(w, err)
		return
	}

	filesCount, err := hand.fileService.GetFilesCount(r.Context())
	if err != nil {
		fileErrHandler(w, err)
		return
	}

	pagination := paginationutils.NewPaginationView(*r.URL, paginationutils.NewPaginationViewParams{
		ItemsPerPage:       pageSize,
		ItemsCount:         filesCount,
		PageQueryParamName: PAGE_QUERY_PARAM_NAME,
	})

	pagesLinks, err := pagination.PagesLinks(page)
	if err != nil {
		fileErrHandler(w, err)
		return
	}

	httputils.WriteJSON(w, http.StatusOK, &getFilesResponse{
		Files: files,
		Pages: pagesLinks,
	})
}

func (hand *fileHandler) GetFileByID(w http.ResponseWriter, r *http.Request) {
	id, err := getIDUrlParam(r)
	if err != nil {
		fileErrHandler(w, err)
		return
	}

	file, err := hand.fileService.GetFileByID(r.Context(), id)
	if err != nil {
		fileErrHandler(w, err)
		return
	}
	httputils.WriteJSON(w, http.StatusOK, &file)
}

func (hand *fileHandler) UploadFile(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(UPLOAD_MEMORY_LIMIT); err != nil {
		httputils.WriteErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	part, header, err := r.FormFile("file")
	if err != nil {
		httputils.WriteErrorResponse(w, http.StatusBadRequest, "missing required `file` form field")
		return
	}
	defer part.Close()

	file, err := hand.fileService.NewFile(r.Context(), service.NewFileParams{
		OriginalName: header.Filename,
		ContentType:  header.Header.Get("Content-Type"),
		Body:         part,
	})
	if err != nil {
		fileErrHandler(w, err)
		return
	}
	httputils.WriteJSON(w, http.StatusCreated, &file)
}

func (hand *fileHandler) DeleteFile(w http.ResponseWriter, r *http.Request) {
	id, err := getIDUrlParam(r)
	if err != nil {
		fileErrHandler(w, err)
		return
	}

	if err := hand.fileService.DeleteFile(r.Context(), id); err != nil {
		fileErrHandler(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (hand *fileHandler) OnRouter(router http.Handler) {
	switch r := router.(type) {
	case *chi.Mux:
		baseURL := "/api/v1"
		r.Get(baseURL+"/files", hand.GetFiles)
		r.Post(baseURL+"/files", hand.UploadFile)
		r.Get(baseURL+"/files/{id}", hand.GetFileByID)
		r.Delete(baseURL+"/files/{id}", hand.DeleteFile)
	}
}

var _ httputils.Handler = (*fileHandler)(nil)

func fileErrHandler(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrFileNotFound):
		httputils.WriteErrorResponse(w, http.StatusNotFound, err.Error())
	case errors.Is(err, ErrUnsupportedQueryParam):
		httputils.WriteErrorResponse(w, http.StatusNotAcceptable, err.Error())
	default:
		httputils.WriteErrorResponse(w, http.StatusInternalServerError, err.Error())
	}
}

type NewFileHandlerParams struct {
	fx.In

	FileService *service.FileService
}

func NewFileHandler(params NewFileHandlerParams) *fileHandler {
	return &fileHandler{
		fileService: params.FileService,
	}
}
