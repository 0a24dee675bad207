package controllers

import (
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/yeremiapane/restaurant-ordering/middlewares"
	"github.com/yeremiapane/restaurant-ordering/services"
	"github.com/yeremiapane/restaurant-ordering/utils"
)

const (
	ItemListPath = "/item_list"
	// UploadsURL is the public prefix under which UploadDir is served.
	UploadsURL = "/uploads"
)

var allowedImageExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

// AllowedImage reports whether name has an extension served as an item image.
func AllowedImage(name string) bool {
	return allowedImageExts[strings.ToLower(filepath.Ext(name))]
}

var itemFormFields = []string{"title", "image", "description", "price", "pieces", "instructions", "labels", "label_colour", "slug"}

type ItemController struct {
	Catalog   *services.CatalogService
	UploadDir string
}

func NewItemController(catalog *services.CatalogService, uploadDir string) *ItemController {
	return &ItemController{Catalog: catalog, UploadDir: uploadDir}
}

// GetAllItems is the public menu.
func (ic *ItemController) GetAllItems(c *gin.Context) {
	items, err := ic.Catalog.List(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of menu items", items)
}

// GetItemBySlug
func (ic *ItemController) GetItemBySlug(c *gin.Context) {
	item, err := ic.Catalog.Detail(c.Request.Context(), c.Param("key"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Item detail", item)
}

// CreateForm describes the fields accepted by CreateItem.
func (ic *ItemController) CreateForm(c *gin.Context) {
	utils.RespondJSON(c, http.StatusOK, "Item form", gin.H{"fields": itemFormFields})
}

func (ic *ItemController) CreateItem(c *gin.Context) {
	var in services.ItemInput
	if err := c.ShouldBind(&in); err != nil {
		bindError(c, err)
		return
	}

	image, err := ic.saveImage(c)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	in.Image = image

	item, err := ic.Catalog.Create(c.Request.Context(), middlewares.CurrentPrincipal(c), in)
	if err != nil {
		ic.removeImage(image)
		respondServiceError(c, err)
		return
	}

	utils.InfoLogger.Printf("Item %q created by user %d", item.Slug, item.CreatedByID)
	utils.RespondRedirect(c, http.StatusCreated, "Item created", "/item/"+item.Slug, item)
}

// EditForm returns the current values of an item to its creator.
func (ic *ItemController) EditForm(c *gin.Context) {
	id, ok := idParam(c, "key")
	if !ok {
		return
	}
	item, err := ic.Catalog.ForEdit(c.Request.Context(), middlewares.CurrentPrincipal(c), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Item form", gin.H{"fields": itemFormFields, "item": item})
}

func (ic *ItemController) UpdateItem(c *gin.Context) {
	id, ok := idParam(c, "key")
	if !ok {
		return
	}

	var in services.ItemInput
	if err := c.ShouldBind(&in); err != nil {
		bindError(c, err)
		return
	}

	image, err := ic.saveImage(c)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	in.Image = image

	item, err := ic.Catalog.Update(c.Request.Context(), middlewares.CurrentPrincipal(c), id, in)
	if err != nil {
		ic.removeImage(image)
		respondServiceError(c, err)
		return
	}
	utils.RespondRedirect(c, http.StatusOK, "Item updated", "/item/"+item.Slug, item)
}

func (ic *ItemController) DeleteItem(c *gin.Context) {
	id, ok := idParam(c, "key")
	if !ok {
		return
	}
	if err := ic.Catalog.Delete(c.Request.Context(), middlewares.CurrentPrincipal(c), id); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondRedirect(c, http.StatusOK, "Item deleted", ItemListPath, gin.H{"item_id": id})
}

// GetMyItems lists the items created by the current user.
func (ic *ItemController) GetMyItems(c *gin.Context) {
	items, err := ic.Catalog.ListByCreator(c.Request.Context(), middlewares.CurrentPrincipal(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Your items", items)
}

// saveImage stores the optional "image" upload and returns its public path.
func (ic *ItemController) saveImage(c *gin.Context) (string, error) {
	file, err := c.FormFile("image")
	if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
		return "", nil
	}
	if err != nil {
		return "", services.NewValidationError("image", err.Error())
	}
	return ic.storeUpload(c, file)
}

func (ic *ItemController) storeUpload(c *gin.Context, file *multipart.FileHeader) (string, error) {
	if !AllowedImage(file.Filename) {
		return "", services.NewValidationError("image", "only jpg, jpeg, png, gif and webp images are accepted")
	}

	if err := os.MkdirAll(ic.UploadDir, 0755); err != nil {
		return "", fmt.Errorf("create upload directory: %w", err)
	}

	filename := uuid.NewString() + strings.ToLower(filepath.Ext(file.Filename))
	if err := c.SaveUploadedFile(file, filepath.Join(ic.UploadDir, filename)); err != nil {
		return "", fmt.Errorf("save image: %w", err)
	}
	return UploadsURL + "/" + filename, nil
}

func (ic *ItemController) removeImage(publicPath string) {
	if publicPath == "" {
		return
	}
	local := filepath.Join(ic.UploadDir, strings.TrimPrefix(publicPath, UploadsURL+"/"))
	if err := os.Remove(local); err != nil {
		utils.ErrorLogger.Printf("Error removing image %s: %v", local, err)
	}
}
