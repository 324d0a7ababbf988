package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/sangwaemm/The-Partners-App/internal/core/ports/services"
	"github.com/sangwaemm/The-Partners-App/internal/dto"
	"github.com/sangwaemm/The-Partners-App/internal/middleware"
)

// memberHandler handles HTTP requests related to members.
type memberHandler struct {
	memberService portssvc.MemberSvcFacade
}

func newMemberHandler(ms portssvc.MemberSvcFacade) *memberHandler {
	return &memberHandler{memberService: ms}
}

// registerMemberRoutes registers routes related to members.
func registerMemberRoutes(rg *gin.RouterGroup, memberService portssvc.MemberSvcFacade) {
	h := newMemberHandler(memberService)

	members := rg.Group("/members")
	{
		members.GET("", h.listMembers)
		members.GET("/shares", h.memberShares)
		members.GET("/:id", h.getMember)
		members.GET("/:id/portfolio", h.getPortfolio)
		members.POST("", middleware.RequireManager(), h.addMember)
		members.PUT("/:id", middleware.RequireManager(), h.updateMember)
	}
}

// listMembers godoc
// @Summary List members
// @Tags members
// @Produce json
// @Success 200 {object} dto.ListMembersResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /members [get]
func (h *memberHandler) listMembers(c *gin.Context) {
	members, err := h.memberService.ListMembers(c.Request.Context())
	if err != nil {
		respondWithError(c, err, "Failed to list members")
		return
	}
	c.JSON(http.StatusOK, dto.ListMembersResponse{Members: members})
}

// memberShares godoc
// @Summary Share table
// @Description Derived total funds, share count and share value of every member.
// @Tags members
// @Produce json
// @Success 200 {object} dto.MemberSharesResponse
// @Security BearerAuth
// @Router /members/shares [get]
func (h *memberHandler) memberShares(c *gin.Context) {
	shares, err := h.memberService.MemberShares(c.Request.Context())
	if err != nil {
		respondWithError(c, err, "Failed to compute shares")
		return
	}
	c.JSON(http.StatusOK, dto.MemberSharesResponse{Shares: shares})
}

// getMember godoc
// @Summary Get a member
// @Tags members
// @Produce json
// @Param id path string true "Member ID"
// @Success 200 {object} domain.Member
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /members/{id} [get]
func (h *memberHandler) getMember(c *gin.Context) {
	member, err := h.memberService.GetMember(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondWithError(c, err, "Failed to retrieve member")
		return
	}
	c.JSON(http.StatusOK, member)
}

// getPortfolio godoc
// @Summary Member portfolio
// @Description Personal financial view. Members may only view their own.
// @Tags members
// @Produce json
// @Param id path string true "Member ID"
// @Success 200 {object} domain.MemberPortfolio
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /members/{id}/portfolio [get]
func (h *memberHandler) getPortfolio(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	portfolio, err := h.memberService.ComputeMemberPortfolio(c.Request.Context(), actor, c.Param("id"))
	if err != nil {
		respondWithError(c, err, "Failed to compute portfolio")
		return
	}
	c.JSON(http.StatusOK, portfolio)
}

// addMember godoc
// @Summary Add a member
// @Tags members
// @Accept json
// @Produce json
// @Param member body dto.CreateMemberRequest true "Member details"
// @Success 201 {object} domain.Member
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Email already used"
// @Security BearerAuth
// @Router /members [post]
func (h *memberHandler) addMember(c *gin.Context) {
	var req dto.CreateMemberRequest
	if !bindJSON(c, &req) {
		return
	}
	member, err := h.memberService.AddMember(c.Request.Context(), req)
	if err != nil {
		respondWithError(c, err, "Failed to add member")
		return
	}
	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Member added", slog.String("new_member_id", member.ID))
	c.JSON(http.StatusCreated, member)
}

// updateMember godoc
// @Summary Update a member
// @Tags members
// @Accept json
// @Produce json
// @Param id path string true "Member ID"
// @Param member body dto.UpdateMemberRequest true "Fields to change"
// @Success 200 {object} domain.Member
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Security BearerAuth
// @Router /members/{id} [put]
func (h *memberHandler) updateMember(c *gin.Context) {
	var req dto.UpdateMemberRequest
	if !bindJSON(c, &req) {
		return
	}
	member, err := h.memberService.UpdateMember(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondWithError(c, err, "Failed to update member")
		return
	}
	c.JSON(http.StatusOK, member)
}
