package public

import (
	"strings"

	handlershared "github.com/ecat-taratra/backend/internal/http/handlers/shared"
	"github.com/ecat-taratra/backend/internal/http/response"
	"github.com/ecat-taratra/backend/internal/repository"

	"github.com/gin-gonic/gin"
)

// GetFormations 培训项目列表
func (h *Handler) GetFormations(c *gin.Context) {
	query, ok := handlershared.ParseListQuery(c)
	if !ok {
		return
	}
	formations, total, err := h.FormationService.List(c.Request.Context(), query.Filter)
	if err != nil {
		respondError(c, response.CodeInternal, "error.fetch_failed", err)
		return
	}
	response.SuccessWithPage(c, formations, query.Pagination(total))
}

// GetFormation 培训项目详情
func (h *Handler) GetFormation(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	formation, err := h.FormationService.Get(c.Request.Context(), id)
	if err != nil {
		respondMapped(c, err, handlershared.ContentErrorRules("error.formation_not_found"), response.CodeInternal, "error.fetch_failed")
		return
	}
	response.Success(c, formation)
}

// GetActualites 新闻列表，支持 categorie 与 search 过滤
func (h *Handler) GetActualites(c *gin.Context) {
	query, ok := handlershared.ParseListQuery(c)
	if !ok {
		return
	}
	actualites, total, err := h.ActualiteService.List(c.Request.Context(), repository.ActualiteListFilter{
		ListFilter: query.Filter,
		Categorie:  strings.TrimSpace(c.Query("categorie")),
		Search:     strings.TrimSpace(c.Query("search")),
	})
	if err != nil {
		respondError(c, response.CodeInternal, "error.fetch_failed", err)
		return
	}
	response.SuccessWithPage(c, actualites, query.Pagination(total))
}

// GetActualite 新闻详情
func (h *Handler) GetActualite(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	actualite, err := h.ActualiteService.Get(c.Request.Context(), id)
	if err != nil {
		respondMapped(c, err, handlershared.ContentErrorRules("error.actualite_not_found"), response.CodeInternal, "error.fetch_failed")
		return
	}
	response.Success(c, actualite)
}

// GetDirectors 校长列表
func (h *Handler) GetDirectors(c *gin.Context) {
	query, ok := handlershared.ParseListQuery(c)
	if !ok {
		return
	}
	directors, total, err := h.DirectorService.List(c.Request.Context(), query.Filter)
	if err != nil {
		respondError(c, response.CodeInternal, "error.fetch_failed", err)
		return
	}
	response.SuccessWithPage(c, directors, query.Pagination(total))
}

// GetDirector 校长详情
func (h *Handler) GetDirector(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	director, err := h.DirectorService.Get(c.Request.Context(), id)
	if err != nil {
		respondMapped(c, err, handlershared.ContentErrorRules("error.director_not_found"), response.CodeInternal, "error.fetch_failed")
		return
	}
	response.Success(c, director)
}

// GetAboutContents 关于内容列表
func (h *Handler) GetAboutContents(c *gin.Context) {
	query, ok := handlershared.ParseListQuery(c)
	if !ok {
		return
	}
	contents, total, err := h.AboutService.ListPublic(c.Request.Context(), query.Filter)
	if err != nil {
		respondError(c, response.CodeInternal, "error.fetch_failed", err)
		return
	}
	response.SuccessWithPage(c, contents, query.Pagination(total))
}

// GetAboutContent 关于内容详情
func (h *Handler) GetAboutContent(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	content, err := h.AboutService.Get(c.Request.Context(), id)
	if err != nil {
		respondMapped(c, err, handlershared.ContentErrorRules("error.about_not_found"), response.CodeInternal, "error.fetch_failed")
		return
	}
	response.Success(c, content)
}

// GetContactInfos 联系方式列表
func (h *Handler) GetContactInfos(c *gin.Context) {
	query, ok := handlershared.ParseListQuery(c)
	if !ok {
		return
	}
	infos, total, err := h.ContactInfoService.ListPublic(c.Request.Context(), query.Filter)
	if err != nil {
		respondError(c, response.CodeInternal, "error.fetch_failed", err)
		return
	}
	response.SuccessWithPage(c, infos, query.Pagination(total))
}

// GetContactInfo 联系方式详情
func (h *Handler) GetContactInfo(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	info, err := h.ContactInfoService.Get(c.Request.Context(), id)
	if err != nil {
		respondMapped(c, err, handlershared.ContentErrorRules("error.contact_info_not_found"), response.CodeInternal, "error.fetch_failed")
		return
	}
	response.Success(c, info)
}
