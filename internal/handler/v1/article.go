package handler

import (
	"fmt"
	"net/http"

	"github.com/reactpress/reactpress/internal/model"
	"github.com/reactpress/reactpress/internal/service"
	"github.com/reactpress/reactpress/pkg/hashutils"
	"github.com/reactpress/reactpress/pkg/httputils"
	"github.com/reactpress/reactpress/pkg/paginationutils"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

type articleHandler struct {
	articleService *service.ArticleService
	viewService    *service.ViewService
	log            *zap.Logger
}

type getArticlesResponse struct {
	Articles []model.Article                  `json:"articles"`
	Pages    []paginationutils.PaginationLink `json:"pages"`
}

func (hand *articleHandler) GetArticles(w http.ResponseWriter, r *http.Request, queryParams *GetArticlesQueryParams) {
	articles, err := hand.articleService.GetArticles(r.Context(), service.GetArticlesParams{
		Status:        queryParams.Status,
		CategoryValue: queryParams.CategoryValue,
		TagValue:      queryParams.TagValue,
		Sorting:       queryParams.Sorting,
		Page:          queryParams.Page,
		PageSize:      queryParams.PageSize,
	})
	if err != nil {
		articleErrHandler(w, err)
		return
	}

	cacheKey := hashutils.GetCacheKey(queryParams.Status, queryParams.CategoryValue, queryParams.TagValue)

	articlesCount, err := hand.articleService.GetArticlesCount(r.Context(), cacheKey, service.GetArticlesCountParams{
		Status:        queryParams.Status,
		CategoryValue: queryParams.CategoryValue,
		TagValue:      queryParams.TagValue,
	})
	if err != nil {
		articleErrHandler(w, err)
		return
	}

	pagination := paginationutils.NewPaginationView(*r.URL, paginationutils.NewPaginationViewParams{
		ItemsPerPage:       queryParams.PageSize,
		ItemsCount:         articlesCount,
		PageQueryParamName: PAGE_QUERY_PARAM_NAME,
	})

	pagesLinks, err := pagination.PagesLinks(queryParams.Page)
	if err != nil {
		articleErrHandler(w, err)
		return
	}

	httputils.WriteJSON(w, http.StatusOK, &getArticlesResponse{
		Articles: articles,
		Pages:    pagesLinks,
	})
}

func (hand *articleHandler) GetArticleByID(w http.ResponseWriter, r *http.Request, params *GetArticleByIDUrlParams) {
	article, err := hand.articleService.GetArticleByID(r.Context(), params.ID)
	if err != nil {
		articleErrHandler(w, err)
		return
	}
	httputils.WriteJSON(w, http.StatusOK, &article)
}

func (hand *articleHandler) NewArticle(w http.ResponseWriter, r *http.Request, payload *ArticlePayload) {
	id, err := hand.articleService.NewArticle(r.Context(), service.NewArticleParams{
		Title:         payload.Title,
		Summary:       payload.Summary,
		Content:       payload.Content,
		Cover:         payload.Cover,
		Status:        payload.Status,
		Password:      payload.Password,
		IsRecommended: payload.IsRecommended,
		IsCommentable: payload.IsCommentable,
		CategoryID:    payload.CategoryID,
		PublishedAt:   payload.publishedAt,
		TagValues:     payload.Tags,
	})
	if err != nil {
		articleErrHandler(w, err)
		return
	}

	article, err := hand.articleService.GetArticleByID(r.Context(), id)
	if err != nil {
		articleErrHandler(w, err)
		return
	}
	httputils.WriteJSON(w, http.StatusCreated, &article)
}

func (hand *articleHandler) UpdateArticle(w http.ResponseWriter, r *http.Request, id int64, payload *ArticlePayload) {
	if err := hand.articleService.UpdateArticle(r.Context(), service.UpdateArticleParams{
		ID:            id,
		Title:         payload.Title,
		Summary:       payload.Summary,
		Content:       payload.Content,
		Cover:         payload.Cover,
		Status:        payload.Status,
		Password:      payload.Password,
		KeepPassword:  payload.KeepPassword,
		IsRecommended: payload.IsRecommended,
		IsCommentable: payload.IsCommentable,
		CategoryID:    payload.CategoryID,
		PublishedAt:   payload.publishedAt,
		TagValues:     payload.Tags,
	}); err != nil {
		articleErrHandler(w, err)
		return
	}

	article, err := hand.articleService.GetArticleByID(r.Context(), id)
	if err != nil {
		articleErrHandler(w, err)
		return
	}
	httputils.WriteJSON(w, http.StatusOK, &article)
}

func (hand *articleHandler) DeleteArticle(w http.ResponseWriter, r *http.Request, params *GetArticleByIDUrlParams) {
	if err := hand.articleService.DeleteArticle(r.Context(), params.ID); err != nil {
		articleErrHandler(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (hand *articleHandler) CheckArticlePassword(w http.ResponseWriter, r *http.Request, id int64, payload *ArticlePasswordPayload) {
	article, err := hand.articleService.CheckArticlePassword(r.Context(), id, payload.Password)
	if err != nil {
		articleErrHandler(w, err)
		return
	}
	httputils.WriteJSON(w, http.StatusOK, &article)
}

func (hand *articleHandler) RecommendedArticles(w http.ResponseWriter, r *http.Request, queryParams *RecommendedArticlesQueryParams) {
	articles, err := hand.articleService.RecommendedArticles(r.Context(), queryParams.ArticleID, queryParams.Limit)
	if err != nil {
		articleErrHandler(w, err)
		return
	}
	httputils.WriteJSON(w, http.StatusOK, articles)
}

func (hand *articleHandler) Archives(w http.ResponseWriter, r *http.Request) {
	entries, err := hand.articleService.Archives(r.Context())
	if err != nil {
		articleErrHandler(w, err)
		return
	}
	httputils.WriteJSON(w, http.StatusOK, entries)
}

func (hand *articleHandler) LikeArticle(w http.ResponseWriter, r *http.Request, id int64, payload *ArticleLikePayload) {
	if err := hand.articleService.LikeArticle(r.Context(), id, payload.Delta); err != nil {
		articleErrHandler(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// RegisterArticleView publishes the view event; counting is asynchronous.
func (hand *articleHandler) RegisterArticleView(w http.ResponseWriter, r *http.Request, params *GetArticleByIDUrlParams) {
	if err := hand.viewService.RegisterView(r.Context(), service.RegisterViewParams{
		URL:       fmt.Sprintf("/article/%d", params.ID),
		IP:        remoteIP(r),
		UserAgent: r.UserAgent(),
	}); err != nil {
		hand.log.Error("unable register article view", zap.Int64("id", params.ID), zap.Error(err))
		articleErrHandler(w, err)
		return
	}
	w.WriteHeader(http.StatusAccepted)
}

var _ ArticleHandler = (*articleHandler)(nil)

type NewArticleHandlerParams struct {
	fx.In

	ArticleService *service.ArticleService
	ViewService    *service.ViewService
	Log            *zap.Logger
}

func NewArticleHandler(params NewArticleHandlerParams) *articleParamsWrapperHandler {
	return newArticleParamsWrapper(&articleHandler{
		articleService: params.ArticleService,
		viewService:    params.ViewService,
		log:            params.Log,
	})
}
