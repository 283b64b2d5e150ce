package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"blogapi/models"
	"blogapi/services"
	"blogapi/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type PostController struct {
	db          *gorm.DB
	postService *services.PostService
}

func NewPostController(db *gorm.DB) *PostController {
	return &PostController{
		db:          db,
		postService: services.NewPostService(db),
	}
}

// Index returns all non-deleted posts. An empty result is a 200 with an
// empty list, not an error.
func (pc *PostController) Index(c *gin.Context) {
	posts, err := pc.postService.GetAllPosts()
	if err != nil {
		utils.JSONResponse(c, http.StatusInternalServerError, nil, "internal server error")
		return
	}

	utils.JSONResponse(c, http.StatusOK, gin.H{"posts": posts}, "show all posts")
}

func (pc *PostController) Store(c *gin.Context) {
	var req models.CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ValidationErrorResponse(c, utils.FormatValidationErrors(err))
		return
	}

	post, err := pc.postService.CreatePost(&req)
	if errors.Is(err, services.ErrAuthorNotFound) {
		utils.ValidationErrorResponse(c, map[string][]string{
			"author_id": {"the selected author_id is invalid"},
		})
		return
	}
	if err != nil {
		utils.JSONResponse(c, http.StatusInternalServerError, nil, "internal server error")
		return
	}

	utils.JSONResponse(c, http.StatusCreated, gin.H{"post": post}, "new post created")
}

func (pc *PostController) Show(c *gin.Context) {
	id, ok := pc.postID(c)
	if !ok {
		return
	}

	post, err := pc.postService.GetPostByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		utils.JSONResponse(c, http.StatusNotFound, nil, "resource not found")
		return
	}
	if err != nil {
		utils.JSONResponse(c, http.StatusInternalServerError, nil, "internal server error")
		return
	}

	utils.JSONResponse(c, http.StatusOK, gin.H{"post": post}, "show post")
}

func (pc *PostController) Update(c *gin.Context) {
	id, ok := pc.postID(c)
	if !ok {
		return
	}

	var req models.UpdatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ValidationErrorResponse(c, utils.FormatValidationErrors(err))
		return
	}

	post, err := pc.postService.UpdatePost(id, &req)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		utils.JSONResponse(c, http.StatusNotFound, nil, "resource not found")
		return
	}
	if err != nil {
		utils.JSONResponse(c, http.StatusInternalServerError, nil, "internal server error")
		return
	}

	utils.JSONResponse(c, http.StatusOK, gin.H{"post": post}, "post updated")
}

// Destroy soft-deletes a post. Deleting a post that is missing or already
// tombstoned is a 404; a successful delete is a bodyless 204.
func (pc *PostController) Destroy(c *gin.Context) {
	id, ok := pc.postID(c)
	if !ok {
		return
	}

	err := pc.postService.DeletePost(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		utils.JSONResponse(c, http.StatusNotFound, nil, "resource not found")
		return
	}
	if err != nil {
		utils.JSONResponse(c, http.StatusInternalServerError, nil, "internal server error")
		return
	}

	c.Status(http.StatusNoContent)
}

func (pc *PostController) postID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.JSONResponse(c, http.StatusNotFound, nil, "resource not found")
		return 0, false
	}
	return uint(id), true
}
