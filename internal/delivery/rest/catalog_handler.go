package rest

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/yourusername/shopx-sentinel/internal/domain/entity"
	"github.com/yourusername/shopx-sentinel/internal/usecase"
)

func (h *Handler) listProducts(c *gin.Context) {
	filters := entity.Filters{
		Query:    c.Query("q"),
		Category: c.Query("category"),
		Sort:     entity.SortOrder(c.Query("sort")),
	}

	var err error
	if filters.MinPrice, err = queryFloat(c, "minPrice"); err != nil {
		badRequest(c, "invalid minPrice")
		return
	}
	if filters.MaxPrice, err = queryFloat(c, "maxPrice"); err != nil {
		badRequest(c, "invalid maxPrice")
		return
	}
	if raw := c.Query("inStock"); raw != "" {
		if filters.InStockOnly, err = strconv.ParseBool(raw); err != nil {
			badRequest(c, "invalid inStock")
			return
		}
	}

	products, err := h.products.List(c.Request.Context(), filters)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"products": products, "count": len(products)})
}

func (h *Handler) listCategories(c *gin.Context) {
	categories, err := h.products.Categories(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"categories": categories})
}

func (h *Handler) getProduct(c *gin.Context) {
	product, err := h.products.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, product)
}

func (h *Handler) relatedProducts(c *gin.Context) {
	related, err := h.products.Related(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"products": related})
}

func (h *Handler) productReviews(c *gin.Context) {
	reviews, err := h.products.Reviews(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, reviews)
}

func (h *Handler) productQuestions(c *gin.Context) {
	questions, err := h.products.Questions(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"questions": questions})
}

func (h *Handler) recommendations(c *gin.Context) {
	offset, err := queryInt(c, "offset", 0)
	if err != nil {
		badRequest(c, "invalid offset")
		return
	}
	limit, err := queryInt(c, "limit", usecase.DefaultRecommendationLimit)
	if err != nil {
		badRequest(c, "invalid limit")
		return
	}

	page, err := h.products.Recommendations(c.Request.Context(), c.Query("exclude"), offset, limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}
