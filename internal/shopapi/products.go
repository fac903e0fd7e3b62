package shopapi

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/markshop/markshop/internal/store"
	"github.com/markshop/markshop/internal/webserver"
)

type productCreatePayload struct {
	Name     string   `json:"name" validate:"required,min=1,max=120"`
	Price    *float64 `json:"price" validate:"required"`
	ImageURL string   `json:"image_url" validate:"required,max=500"`
	Category string   `json:"category"`
	Discount float64  `json:"discount"`
	IsSale   bool     `json:"is_sale"`
}

type productUpdatePayload struct {
	Name     *string  `json:"name" validate:"omitempty,min=1,max=120"`
	Price    *float64 `json:"price"`
	ImageURL *string  `json:"image_url" validate:"omitempty,max=500"`
	Category *string  `json:"category"`
	Discount *float64 `json:"discount"`
	IsSale   *bool    `json:"is_sale"`
}

// registerProductRoutes registers the product CRUD endpoints
func registerProductRoutes() {
	webserver.ApiGET("/products", listProducts)
	webserver.ApiGET("/products/:id", getProduct)
	webserver.ApiPOST("/products", createProduct)
	webserver.ApiPUT("/products/:id", updateProduct)
	webserver.ApiDELETE("/products/:id", deleteProduct)
}

func productRepo(c echo.Context) store.ProductRepository {
	return store.NewProductRepository(webserver.GetDB(c))
}

func listProducts(c echo.Context) error {
	products, err := productRepo(c).ListAll(c.Request().Context())
	if err != nil {
		return jsonError(c, http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusOK, products)
}

func getProduct(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return jsonError(c, http.StatusNotFound, msgProductNotFound)
	}
	p, err := productRepo(c).Get(c.Request().Context(), id)
	if errors.Is(err, store.ErrProductNotFound) {
		return jsonError(c, http.StatusNotFound, msgProductNotFound)
	}
	if err != nil {
		return jsonError(c, http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusOK, p)
}

func createProduct(c echo.Context) error {
	var payload productCreatePayload
	if err := c.Bind(&payload); err != nil {
		return jsonError(c, http.StatusBadRequest, errMessage(err))
	}
	if err := c.Validate(&payload); err != nil {
		return jsonError(c, http.StatusBadRequest, errMessage(err))
	}

	p, err := productRepo(c).Insert(c.Request().Context(), store.ProductFields{
		Name:     payload.Name,
		Price:    *payload.Price,
		ImageURL: payload.ImageURL,
		Category: payload.Category,
		Discount: payload.Discount,
		IsSale:   payload.IsSale,
	})
	if err != nil {
		return jsonError(c, http.StatusBadRequest, err.Error())
	}

	return c.JSON(http.StatusCreated, echo.Map{
		"message": msgProductCreated,
		"product": p,
	})
}

func updateProduct(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return jsonError(c, http.StatusNotFound, msgProductNotFound)
	}

	var payload productUpdatePayload
	if err := c.Bind(&payload); err != nil {
		return jsonError(c, http.StatusBadRequest, errMessage(err))
	}
	if err := c.Validate(&payload); err != nil {
		return jsonError(c, http.StatusBadRequest, errMessage(err))
	}

	p, err := productRepo(c).Update(c.Request().Context(), id, store.ProductPatch{
		Name:     payload.Name,
		Price:    payload.Price,
		ImageURL: payload.ImageURL,
		Category: payload.Category,
		Discount: payload.Discount,
		IsSale:   payload.IsSale,
	})
	if errors.Is(err, store.ErrProductNotFound) {
		return jsonError(c, http.StatusNotFound, msgProductNotFound)
	}
	if err != nil {
		return jsonError(c, http.StatusBadRequest, err.Error())
	}

	return c.JSON(http.StatusOK, echo.Map{
		"message": msgProductUpdated,
		"product": p,
	})
}

func deleteProduct(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return jsonError(c, http.StatusNotFound, msgProductNotFound)
	}
	err = productRepo(c).Delete(c.Request().Context(), id)
	if errors.Is(err, store.ErrProductNotFound) {
		return jsonError(c, http.StatusNotFound, msgProductNotFound)
	}
	if err != nil {
		return jsonError(c, http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusOK, echo.Map{"message": msgProductDeleted})
}

func errMessage(err error) string {
	if he, ok := err.(*echo.HTTPError); ok {
		if msg, ok := he.Message.(string); ok {
			return msg
		}
		if inner, ok := he.Message.(error); ok {
			return inner.Error()
		}
	}
	return err.Error()
}
