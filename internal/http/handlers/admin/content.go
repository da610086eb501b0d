package admin

import (
	"strings"
	"time"

	handlershared "github.com/ecat-taratra/backend/internal/http/handlers/shared"
	"github.com/ecat-taratra/backend/internal/http/response"
	"github.com/ecat-taratra/backend/internal/service"

	"github.com/gin-gonic/gin"
)

// FormationRequest 培训项目创建/更新请求
type FormationRequest struct {
	Titre       *string `json:"titre"`
	Description *string `json:"description"`
	Programme   *string `json:"programme"`
	Image       *string `json:"image"`
}

func (r FormationRequest) toInput() service.FormationInput {
	return service.FormationInput{
		Titre:       r.Titre,
		Description: r.Description,
		Programme:   r.Programme,
		Image:       r.Image,
	}
}

// ActualiteRequest 新闻创建/更新请求
type ActualiteRequest struct {
	Titre     *string `json:"titre"`
	Contenu   *string `json:"contenu"`
	Image     *string `json:"image"`
	Categorie *string `json:"categorie"`
}

func (r ActualiteRequest) toInput() service.ActualiteInput {
	return service.ActualiteInput{
		Titre:     r.Titre,
		Contenu:   r.Contenu,
		Image:     r.Image,
		Categorie: r.Categorie,
	}
}

// DirectorRequest 校长创建/更新请求
type DirectorRequest struct {
	Name      *string `json:"name"`
	Title     *string `json:"title"`
	Bio       *string `json:"bio"`
	Email     *string `json:"email"`
	PhotoURL  *string `json:"photo_url"`
	Message   *string `json:"message"`
	StartDate *string `json:"start_date"`
}

func (r DirectorRequest) toInput() (service.DirectorInput, error) {
	startDate, err := parseDateNullable(r.StartDate)
	if err != nil {
		return service.DirectorInput{}, err
	}
	return service.DirectorInput{
		Name:      r.Name,
		Title:     r.Title,
		Bio:       r.Bio,
		Email:     r.Email,
		PhotoURL:  r.PhotoURL,
		Message:   r.Message,
		StartDate: startDate,
	}, nil
}

// AboutRequest 关于内容创建/更新请求
type AboutRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Mission     *string `json:"mission"`
	Vision      *string `json:"vision"`
	History     *string `json:"history"`
}

func (r AboutRequest) toInput() service.AboutInput {
	return service.AboutInput{
		Title:       r.Title,
		Description: r.Description,
		Mission:     r.Mission,
		Vision:      r.Vision,
		History:     r.History,
	}
}

// ContactInfoRequest 联系方式创建/更新请求
type ContactInfoRequest struct {
	Email       *string `json:"email"`
	Phone       *string `json:"phone"`
	Address     *string `json:"address"`
	MapURL      *string `json:"map_url"`
	SocialMedia *string `json:"social_media"`
}

func (r ContactInfoRequest) toInput() service.ContactInfoInput {
	return service.ContactInfoInput{
		Email:       r.Email,
		Phone:       r.Phone,
		Address:     r.Address,
		MapURL:      r.MapURL,
		SocialMedia: r.SocialMedia,
	}
}

// CreateFormation 创建培训项目
func (h *Handler) CreateFormation(c *gin.Context) {
	var req FormationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}
	formation, err := h.FormationService.Create(c.Request.Context(), req.toInput())
	if err != nil {
		respondMapped(c, err, handlershared.ContentErrorRules("error.formation_not_found"), response.CodeInternal, "error.save_failed")
		return
	}
	response.Created(c, formation)
}

// UpdateFormation 更新培训项目
func (h *Handler) UpdateFormation(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req FormationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}
	formation, err := h.FormationService.Update(c.Request.Context(), id, req.toInput())
	if err != nil {
		respondMapped(c, err, handlershared.ContentErrorRules("error.formation_not_found"), response.CodeInternal, "error.save_failed")
		return
	}
	response.Success(c, formation)
}

// DeleteFormation 删除培训项目
func (h *Handler) DeleteFormation(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.FormationService.Delete(c.Request.Context(), id); err != nil {
		respondMapped(c, err, handlershared.ContentErrorRules("error.formation_not_found"), response.CodeInternal, "error.delete_failed")
		return
	}
	handlershared.RespondMessage(c, "message.deleted", nil)
}

// CreateActualite 创建新闻
func (h *Handler) CreateActualite(c *gin.Context) {
	var req ActualiteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}
	actualite, err := h.ActualiteService.Create(c.Request.Context(), req.toInput())
	if err != nil {
		respondMapped(c, err, handlershared.ContentErrorRules("error.actualite_not_found"), response.CodeInternal, "error.save_failed")
		return
	}
	response.Created(c, actualite)
}

// UpdateActualite 更新新闻
func (h *Handler) UpdateActualite(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req ActualiteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}
	actualite, err := h.ActualiteService.Update(c.Request.Context(), id, req.toInput())
	if err != nil {
		respondMapped(c, err, handlershared.ContentErrorRules("error.actualite_not_found"), response.CodeInternal, "error.save_failed")
		return
	}
	response.Success(c, actualite)
}

// DeleteActualite 删除新闻
func (h *Handler) DeleteActualite(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.ActualiteService.Delete(c.Request.Context(), id); err != nil {
		respondMapped(c, err, handlershared.ContentErrorRules("error.actualite_not_found"), response.CodeInternal, "error.delete_failed")
		return
	}
	handlershared.RespondMessage(c, "message.deleted", nil)
}

// CreateDirector 创建校长
func (h *Handler) CreateDirector(c *gin.Context) {
	var req DirectorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}
	input, err := req.toInput()
	if err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}
	director, err := h.DirectorService.Create(c.Request.Context(), input)
	if err != nil {
		respondMapped(c, err, handlershared.ContentErrorRules("error.director_not_found"), response.CodeInternal, "error.save_failed")
		return
	}
	response.Created(c, director)
}

// UpdateDirector 更新校长
func (h *Handler) UpdateDirector(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req DirectorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}
	input, err := req.toInput()
	if err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}
	director, err := h.DirectorService.Update(c.Request.Context(), id, input)
	if err != nil {
		respondMapped(c, err, handlershared.ContentErrorRules("error.director_not_found"), response.CodeInternal, "error.save_failed")
		return
	}
	response.Success(c, director)
}

// DeleteDirector 删除校长
func (h *Handler) DeleteDirector(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.DirectorService.Delete(c.Request.Context(), id); err != nil {
		respondMapped(c, err, handlershared.ContentErrorRules("error.director_not_found"), response.CodeInternal, "error.delete_failed")
		return
	}
	handlershared.RespondMessage(c, "message.deleted", nil)
}

// CreateAbout 创建关于内容
func (h *Handler) CreateAbout(c *gin.Context) {
	var req AboutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}
	content, err := h.AboutService.Create(c.Request.Context(), req.toInput())
	if err != nil {
		respondMapped(c, err, handlershared.ContentErrorRules("error.about_not_found"), response.CodeInternal, "error.save_failed")
		return
	}
	response.Created(c, content)
}

// UpdateAbout 更新关于内容
func (h *Handler) UpdateAbout(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req AboutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}
	content, err := h.AboutService.Update(c.Request.Context(), id, req.toInput())
	if err != nil {
		respondMapped(c, err, handlershared.ContentErrorRules("error.about_not_found"), response.CodeInternal, "error.save_failed")
		return
	}
	response.Success(c, content)
}

// DeleteAbout 删除关于内容
func (h *Handler) DeleteAbout(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.AboutService.Delete(c.Request.Context(), id); err != nil {
		respondMapped(c, err, handlershared.ContentErrorRules("error.about_not_found"), response.CodeInternal, "error.delete_failed")
		return
	}
	handlershared.RespondMessage(c, "message.deleted", nil)
}

// CreateContactInfo 创建联系方式
func (h *Handler) CreateContactInfo(c *gin.Context) {
	var req ContactInfoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}
	info, err := h.ContactInfoService.Create(c.Request.Context(), req.toInput())
	if err != nil {
		respondMapped(c, err, handlershared.ContentErrorRules("error.contact_info_not_found"), response.CodeInternal, "error.save_failed")
		return
	}
	response.Created(c, info)
}

// UpdateContactInfo 更新联系方式
func (h *Handler) UpdateContactInfo(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req ContactInfoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}
	info, err := h.ContactInfoService.Update(c.Request.Context(), id, req.toInput())
	if err != nil {
		respondMapped(c, err, handlershared.ContentErrorRules("error.contact_info_not_found"), response.CodeInternal, "error.save_failed")
		return
	}
	response.Success(c, info)
}

// DeleteContactInfo 删除联系方式
func (h *Handler) DeleteContactInfo(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.ContactInfoService.Delete(c.Request.Context(), id); err != nil {
		respondMapped(c, err, handlershared.ContentErrorRules("error.contact_info_not_found"), response.CodeInternal, "error.delete_failed")
		return
	}
	handlershared.RespondMessage(c, "message.deleted", nil)
}

// parseDateNullable 支持 YYYY-MM-DD 与 RFC3339，空值返回 nil
func parseDateNullable(raw *string) (*time.Time, error) {
	if raw == nil {
		return nil, nil
	}
	value := strings.TrimSpace(*raw)
	if value == "" {
		return nil, nil
	}
	if parsed, err := time.Parse("2006-01-02", value); err == nil {
		return &parsed, nil
	}
	parsed, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}
