package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"consulting-api/internal/domain"
	"consulting-api/internal/service"
)

// Content responses keep the `_id` key the frontend already consumes.

type BlogPostResponse struct {
	ID        string `json:"_id"`
	Title     string `json:"title"`
	Content   string `json:"content"`
	Category  string `json:"category"`
	Author    string `json:"author"`
	Status    string `json:"status"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

func postToResponse(post domain.BlogPost) BlogPostResponse {
	return BlogPostResponse{
		ID:        post.ID,
		Title:     post.Title,
		Content:   post.Content,
		Category:  post.Category,
		Author:    post.Author,
		Status:    string(post.Status),
		CreatedAt: post.CreatedAt.Format(time.RFC3339),
		UpdatedAt: post.UpdatedAt.Format(time.RFC3339),
	}
}

func (h *Handler) listPosts(c *gin.Context) {
	posts, err := h.blog.ListPublished(c.Request.Context())
	if err != nil {
		h.respondServiceError(c, err)
		return
	}
	resp := make([]BlogPostResponse, len(posts))
	for i := range posts {
		resp[i] = postToResponse(posts[i])
	}
	respondData(c, http.StatusOK, resp)
}

func (h *Handler) listAllPosts(c *gin.Context) {
	posts, err := h.blog.ListAll(c.Request.Context())
	if err != nil {
		h.respondServiceError(c, err)
		return
	}
	resp := make([]BlogPostResponse, len(posts))
	for i := range posts {
		resp[i] = postToResponse(posts[i])
	}
	respondData(c, http.StatusOK, resp)
}

func (h *Handler) getPost(c *gin.Context) {
	id := c.Param("id")
	if !validResourceID(id) {
		respondError(c, http.StatusBadRequest, "Invalid post ID")
		return
	}

	post, err := h.blog.Get(c.Request.Context(), id)
	if err != nil {
		h.respondServiceError(c, err)
		return
	}
	respondData(c, http.StatusOK, postToResponse(*post))
}

type createPostRequest struct {
	Title    string `json:"title"`
	Content  string `json:"content"`
	Category string `json:"category"`
	Author   string `json:"author"`
	Status   string `json:"status"`
}

func (h *Handler) createPost(c *gin.Context) {
	var req createPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	id, err := h.blog.Create(c.Request.Context(), service.BlogPostInput{
		Title:    req.Title,
		Content:  req.Content,
		Category: req.Category,
		Author:   req.Author,
		Status:   req.Status,
	})
	if err != nil {
		h.respondServiceError(c, err)
		return
	}
	respondData(c, http.StatusCreated, gin.H{"_id": id})
}

type updatePostRequest struct {
	Title    *string `json:"title"`
	Content  *string `json:"content"`
	Category *string `json:"category"`
	Author   *string `json:"author"`
	Status   *string `json:"status"`
}

func (h *Handler) updatePost(c *gin.Context) {
	id := c.Param("id")
	if !validResourceID(id) {
		respondError(c, http.StatusBadRequest, "Invalid post ID")
		return
	}

	var req updatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	upd := domain.BlogPostUpdate{
		Title:    req.Title,
		Content:  req.Content,
		Category: req.Category,
		Author:   req.Author,
	}
	if req.Status != nil {
		status := domain.PostStatus(*req.Status)
		upd.Status = &status
	}

	if err := h.blog.Update(c.Request.Context(), id, upd); err != nil {
		h.respondServiceError(c, err)
		return
	}
	respondMessage(c, "Post updated successfully")
}

func (h *Handler) deletePost(c *gin.Context) {
	id := c.Param("id")
	if !validResourceID(id) {
		respondError(c, http.StatusBadRequest, "Invalid post ID")
		return
	}

	if err := h.blog.Delete(c.Request.Context(), id); err != nil {
		h.respondServiceError(c, err)
		return
	}
	respondMessage(c, "Post deleted successfully")
}

type TestimonialResponse struct {
	ID         string `json:"_id"`
	ClientName string `json:"client_name"`
	Company    string `json:"company"`
	Position   string `json:"position"`
	Text       string `json:"text"`
	Rating     int    `json:"rating"`
	Status     string `json:"status"`
	CreatedAt  string `json:"created_at"`
}

func (h *Handler) listTestimonials(c *gin.Context) {
	testimonials, err := h.testimonials.List(c.Request.Context())
	if err != nil {
		h.respondServiceError(c, err)
		return
	}
	resp := make([]TestimonialResponse, len(testimonials))
	for i, tm := range testimonials {
		resp[i] = TestimonialResponse{
			ID:         tm.ID,
			ClientName: tm.ClientName,
			Company:    tm.Company,
			Position:   tm.Position,
			Text:       tm.Text,
			Rating:     tm.Rating,
			Status:     tm.Status,
			CreatedAt:  tm.CreatedAt.Format(time.RFC3339),
		}
	}
	respondData(c, http.StatusOK, resp)
}

type createTestimonialRequest struct {
	ClientName string `json:"client_name"`
	Company    string `json:"company"`
	Position   string `json:"position"`
	Text       string `json:"text"`
	Rating     *int   `json:"rating"`
	Status     string `json:"status"`
}

func (h *Handler) createTestimonial(c *gin.Context) {
	var req createTestimonialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	id, err := h.testimonials.Create(c.Request.Context(), service.TestimonialInput{
		ClientName: req.ClientName,
		Company:    req.Company,
		Position:   req.Position,
		Text:       req.Text,
		Rating:     req.Rating,
		Status:     req.Status,
	})
	if err != nil {
		h.respondServiceError(c, err)
		return
	}
	respondData(c, http.StatusCreated, gin.H{"_id": id})
}

type updateTestimonialRequest struct {
	ClientName *string `json:"client_name"`
	Company    *string `json:"company"`
	Position   *string `json:"position"`
	Text       *string `json:"text"`
	Rating     *int    `json:"rating"`
	Status     *string `json:"status"`
}

func (h *Handler) updateTestimonial(c *gin.Context) {
	var req updateTestimonialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	err := h.testimonials.Update(c.Request.Context(), c.Param("id"), domain.TestimonialUpdate{
		ClientName: req.ClientName,
		Company:    req.Company,
		Position:   req.Position,
		Text:       req.Text,
		Rating:     req.Rating,
		Status:     req.Status,
	})
	if err != nil {
		h.respondServiceError(c, err)
		return
	}
	respondMessage(c, "Testimonial updated successfully")
}

func (h *Handler) deleteTestimonial(c *gin.Context) {
	if err := h.testimonials.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.respondServiceError(c, err)
		return
	}
	respondMessage(c, "Testimonial deleted successfully")
}

type ContactResponse struct {
	ID        string `json:"_id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Company   string `json:"company"`
	Message   string `json:"message"`
	Status    string `json:"status"`
	CreatedAt string `json:"created_at"`
}

func (h *Handler) listContacts(c *gin.Context) {
	contacts, err := h.contacts.List(c.Request.Context())
	if err != nil {
		h.respondServiceError(c, err)
		return
	}
	resp := make([]ContactResponse, len(contacts))
	for i, contact := range contacts {
		resp[i] = ContactResponse{
			ID:        contact.ID,
			Name:      contact.Name,
			Email:     contact.Email,
			Company:   contact.Company,
			Message:   contact.Message,
			Status:    contact.Status,
			CreatedAt: contact.CreatedAt.Format(time.RFC3339),
		}
	}
	respondData(c, http.StatusOK, resp)
}

type createContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Company string `json:"company"`
	Message string `json:"message"`
}

func (h *Handler) createContact(c *gin.Context) {
	var req createContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	id, err := h.contacts.Create(c.Request.Context(), service.ContactInput{
		Name:    req.Name,
		Email:   req.Email,
		Company: req.Company,
		Message: req.Message,
	})
	if err != nil {
		h.respondServiceError(c, err)
		return
	}
	respondData(c, http.StatusCreated, gin.H{"_id": id})
}

type updateContactRequest struct {
	Name    *string `json:"name"`
	Email   *string `json:"email"`
	Company *string `json:"company"`
	Message *string `json:"message"`
	Status  *string `json:"status"`
}

func (h *Handler) updateContact(c *gin.Context) {
	var req updateContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	err := h.contacts.Update(c.Request.Context(), c.Param("id"), domain.ContactUpdate{
		Name:    req.Name,
		Email:   req.Email,
		Company: req.Company,
		Message: req.Message,
		Status:  req.Status,
	})
	if err != nil {
		h.respondServiceError(c, err)
		return
	}
	respondMessage(c, "Contact updated successfully")
}

func (h *Handler) deleteContact(c *gin.Context) {
	if err := h.contacts.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.respondServiceError(c, err)
		return
	}
	respondMessage(c, "Contact deleted successfully")
}

// UserResponse is the directory listing view of an account.
type UserResponse struct {
	ID        string  `json:"_id"`
	Name      string  `json:"name"`
	Email     string  `json:"email"`
	UserType  string  `json:"user_type"`
	Status    string  `json:"status"`
	CreatedAt string  `json:"created_at"`
	LastLogin *string `json:"last_login,omitempty"`
}

func (h *Handler) listUsers(c *gin.Context) {
	accounts, err := h.users.List(c.Request.Context())
	if err != nil {
		h.respondServiceError(c, err)
		return
	}
	resp := make([]UserResponse, len(accounts))
	for i, acct := range accounts {
		resp[i] = UserResponse{
			ID:        acct.ID,
			Name:      acct.Name,
			Email:     acct.Email,
			UserType:  string(acct.Role),
			Status:    string(acct.Status),
			CreatedAt: acct.CreatedAt.Format(time.RFC3339),
		}
		if acct.LastLogin != nil {
			v := acct.LastLogin.Format(time.RFC3339)
			resp[i].LastLogin = &v
		}
	}
	respondData(c, http.StatusOK, resp)
}

type createUserRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	UserType string `json:"user_type"`
}

func (h *Handler) createUser(c *gin.Context) {
	var req createUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	id, err := h.users.Create(c.Request.Context(), req.Name, req.Email, domain.Role(req.UserType))
	if err != nil {
		h.respondServiceError(c, err)
		return
	}
	respondData(c, http.StatusCreated, gin.H{"_id": id})
}

type updateUserRequest struct {
	Name     *string `json:"name"`
	UserType *string `json:"user_type"`
	Status   *string `json:"status"`
}

func (h *Handler) updateUser(c *gin.Context) {
	var req updateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	upd := domain.AccountUpdate{Name: req.Name}
	if req.UserType != nil {
		role := domain.Role(*req.UserType)
		upd.Role = &role
	}
	if req.Status != nil {
		status := domain.AccountStatus(*req.Status)
		upd.Status = &status
	}

	if err := h.users.Update(c.Request.Context(), c.Param("id"), upd); err != nil {
		h.respondServiceError(c, err)
		return
	}
	respondMessage(c, "User updated successfully")
}

func (h *Handler) touchUserLogin(c *gin.Context) {
	if err := h.users.TouchLastLogin(c.Request.Context(), c.Param("id")); err != nil {
		h.respondServiceError(c, err)
		return
	}
	respondMessage(c, "Last login updated successfully")
}
