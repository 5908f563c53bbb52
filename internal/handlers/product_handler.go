package handlers

import (
	"errors"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"paletteandfit/internal/models"
	"paletteandfit/internal/services"

	"github.com/gofiber/fiber/v2"
)

const imageField = "image_file"

// ProductHandler handles HTTP requests for the catalog.
type ProductHandler struct {
	service   *services.ProductService
	uploadDir string
}

// NewProductHandler creates a new ProductHandler. Uploaded images are written to uploadDir.
func NewProductHandler(service *services.ProductService, uploadDir string) *ProductHandler {
	return &ProductHandler{
		service:   service,
		uploadDir: uploadDir,
	}
}

// RegisterRoutes registers the catalog routes. Reads are public; writes run
// behind the given middleware.
func (h *ProductHandler) RegisterRoutes(router fiber.Router, writeMW ...fiber.Handler) {
	productRoutes := router.Group("/products")
	productRoutes.Get("/", h.HandleGetProducts)
	productRoutes.Get("/category/:category", h.HandleGetByCategory)
	productRoutes.Get("/:id", h.HandleGetProductByID)
	productRoutes.Post("/", withMiddleware(writeMW, h.HandleCreateProduct)...)
	productRoutes.Put("/:id", withMiddleware(writeMW, h.HandleUpdateProduct)...)
	productRoutes.Delete("/:id", withMiddleware(writeMW, h.HandleDeleteProduct)...)
}

// productRequest is the JSON form of a product write.
type productRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	ImageURL    *string `json:"image_url"`
	Gender      *string `json:"gender"`
	Category    *string `json:"category"`
}

func (r productRequest) empty() bool {
	return r.Title == nil && r.Description == nil && r.ImageURL == nil && r.Gender == nil && r.Category == nil
}

func (r productRequest) toModel(id uint) models.Product {
	return models.Product{
		ID:          id,
		Title:       r.Title,
		Description: r.Description,
		ImageURL:    r.ImageURL,
		Gender:      r.Gender,
		Category:    r.Category,
	}
}

// HandleGetProducts retrieves all products.
func (h *ProductHandler) HandleGetProducts(c *fiber.Ctx) error {
	products, err := h.service.GetAllProducts()
	if err != nil {
		return serverError(c, "Error getting all products", err)
	}
	return c.JSON(products)
}

// HandleGetByCategory lists a category, optionally filtered by ?gender=.
func (h *ProductHandler) HandleGetByCategory(c *fiber.Ctx) error {
	products, err := h.service.GetProductsByCategory(c.Params("category"), c.Query("gender"))
	if err != nil {
		return serverError(c, "Error getting products by category", err)
	}
	return c.JSON(products)
}

// HandleGetProductByID retrieves a single product by its ID.
func (h *ProductHandler) HandleGetProductByID(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return errorJSON(c, fiber.StatusNotFound, "Product not found")
	}
	product, err := h.service.GetProductByID(id)
	if err != nil {
		return h.writeErr(c, "Error getting product", err)
	}
	return c.JSON(product)
}

// HandleCreateProduct creates one product per accepted uploaded image, or a
// single product from a JSON body carrying an image_url.
func (h *ProductHandler) HandleCreateProduct(c *fiber.Ctx) error {
	if form := h.multipartForm(c); form != nil {
		if uploadedImage(form) == nil {
			return errorJSON(c, fiber.StatusBadRequest, "No image or data provided")
		}
		return h.createFromUploads(c, form, form.File[imageField])
	}

	var req productRequest
	if !c.Is("json") || c.BodyParser(&req) != nil || req.empty() {
		return errorJSON(c, fiber.StatusBadRequest, "No image or data provided")
	}
	product := req.toModel(0)
	if err := h.service.CreateProduct(&product); err != nil {
		return serverError(c, "Error creating product", err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"id":        product.ID,
		"image_url": product.ImageURL,
	})
}

func (h *ProductHandler) createFromUploads(c *fiber.Ctx, form *multipart.Form, files []*multipart.FileHeader) error {
	created := make([]fiber.Map, 0, len(files))
	for _, file := range files {
		if !services.AllowedImage(file.Filename) {
			continue
		}
		imageURL, err := h.saveUpload(c, file)
		if err != nil {
			return serverError(c, "Error saving upload", err)
		}
		product := productFromForm(form, 0)
		product.ImageURL = &imageURL
		if err := h.service.CreateProduct(&product); err != nil {
			return serverError(c, "Error creating product", err)
		}
		created = append(created, fiber.Map{"id": product.ID, "image_url": imageURL})
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

// HandleUpdateProduct overwrites all columns from either a multipart form
// or a JSON body. A form without a new image keeps the stored one unless it
// sends image_url.
func (h *ProductHandler) HandleUpdateProduct(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return errorJSON(c, fiber.StatusNotFound, "Product not found")
	}

	var product models.Product
	if form := h.multipartForm(c); form != nil {
		product = productFromForm(form, id)
		if file := uploadedImage(form); file != nil {
			if !services.AllowedImage(file.Filename) {
				return errorJSON(c, fiber.StatusBadRequest, "Invalid file type")
			}
			imageURL, err := h.saveUpload(c, file)
			if err != nil {
				return serverError(c, "Error saving upload", err)
			}
			product.ImageURL = &imageURL
		} else if product.ImageURL == nil {
			current, err := h.service.GetProductByID(id)
			if err != nil {
				return h.writeErr(c, "Error updating product", err)
			}
			product.ImageURL = current.ImageURL
		}
	} else {
		var req productRequest
		if len(c.Body()) > 0 {
			if !c.Is("json") || c.BodyParser(&req) != nil {
				return errorJSON(c, fiber.StatusBadRequest, "Invalid request body")
			}
		}
		product = req.toModel(id)
	}

	if err := h.service.UpdateProduct(&product); err != nil {
		return h.writeErr(c, "Error updating product", err)
	}
	return c.JSON(fiber.Map{"success": true})
}

// HandleDeleteProduct deletes a product by its ID.
func (h *ProductHandler) HandleDeleteProduct(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return errorJSON(c, fiber.StatusNotFound, "Product not found")
	}
	if err := h.service.DeleteProduct(id); err != nil {
		return h.writeErr(c, "Error deleting product", err)
	}
	return c.JSON(fiber.Map{"success": true})
}

func (h *ProductHandler) multipartForm(c *fiber.Ctx) *multipart.Form {
	if !strings.HasPrefix(c.Get(fiber.HeaderContentType), fiber.MIMEMultipartForm) {
		return nil
	}
	form, err := c.MultipartForm()
	if err != nil {
		return nil
	}
	return form
}

// saveUpload writes the file under the upload folder and returns its public URL.
func (h *ProductHandler) saveUpload(c *fiber.Ctx, file *multipart.FileHeader) (string, error) {
	if err := os.MkdirAll(h.uploadDir, 0o755); err != nil {
		return "", err
	}
	name := services.UploadName(file.Filename)
	if err := c.SaveFile(file, filepath.Join(h.uploadDir, name)); err != nil {
		return "", err
	}
	return services.ImageURL(name), nil
}

func (h *ProductHandler) writeErr(c *fiber.Ctx, action string, err error) error {
	if errors.Is(err, services.ErrProductNotFound) {
		return errorJSON(c, fiber.StatusNotFound, "Product not found")
	}
	return serverError(c, action, err)
}

func productFromForm(form *multipart.Form, id uint) models.Product {
	return models.Product{
		ID:          id,
		Title:       formValue(form, "title"),
		Description: formValue(form, "description"),
		ImageURL:    formValue(form, "image_url"),
		Gender:      formValue(form, "gender"),
		Category:    formValue(form, "category"),
	}
}

// uploadedImage returns the first image_file part, or nil when none was sent.
func uploadedImage(form *multipart.Form) *multipart.FileHeader {
	files := form.File[imageField]
	if len(files) == 0 || files[0].Filename == "" {
		return nil
	}
	return files[0]
}

// formValue returns nil for a field that was not submitted.
func formValue(form *multipart.Form, key string) *string {
	values, ok := form.Value[key]
	if !ok || len(values) == 0 {
		return nil
	}
	v := values[0]
	return &v
}
