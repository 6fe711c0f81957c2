package http

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-openapi/strfmt"

	"tariff_tracker/internal/lib/sl"
	"tariff_tracker/internal/listing"
)

func setupRouter(r *gin.Engine, u UseCases, log *slog.Logger) {
	r.HandleMethodNotAllowed = true

	r.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})

	{
		v1 := r.Group("api/v1/")
		setupTariffs(v1, u, log)
		setupPayday(v1, u, log)
		setupListings(v1, u, log)
	}
}

// parseID reads a positive int64 path parameter, answering 422 when it is not one
func parseID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "invalid " + name})
		return 0, false
	}
	return id, true
}

func setupTariffs(r *gin.RouterGroup, u UseCases, log *slog.Logger) {
	const path = "/users/:user_id/services/:service_id/tariffs"

	r.GET(path, func(c *gin.Context) {
		if !requireAcceptJSON(c) {
			return
		}
		userID, ok := parseID(c, "user_id")
		if !ok {
			return
		}
		serviceID, ok := parseID(c, "service_id")
		if !ok {
			return
		}

		group, err := u.Tariffs.GetTariffs(c, userID, serviceID)
		if err != nil {
			log.Error("get tariffs", sl.Err(err), slog.Int64("user_id", userID), slog.Int64("service_id", serviceID))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
			return
		}
		if group == nil {
			c.JSON(http.StatusOK, gin.H{})
			return
		}
		c.JSON(http.StatusOK, group)
	})

	r.OPTIONS(path, func(c *gin.Context) {
		c.Writer.Header().Set("Allow", "GET,OPTIONS")
		c.Status(http.StatusNoContent)
	})
}

func setupPayday(r *gin.RouterGroup, u UseCases, log *slog.Logger) {
	const path = "/users/:user_id/services/:service_id/payday"

	r.PUT(path, func(c *gin.Context) {
		if !requireAcceptJSON(c) {
			return
		}
		if c.ContentType() != "" && c.ContentType() != "application/json" {
			c.JSON(http.StatusUnsupportedMediaType, gin.H{"error": "Use application/json"})
			return
		}
		userID, ok := parseID(c, "user_id")
		if !ok {
			return
		}
		serviceID, ok := parseID(c, "service_id")
		if !ok {
			return
		}

		var input PaydayInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if err := input.Validate(strfmt.Default); err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
			return
		}

		updated, err := u.Tariffs.SetPayday(c, userID, serviceID, *input.TariffID)
		if err != nil {
			log.Error("set payday", sl.Err(err), slog.Int64("user_id", userID), slog.Int64("service_id", serviceID))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
			return
		}
		c.JSON(http.StatusOK, PaydayResult{Updated: updated})
	})

	r.OPTIONS(path, func(c *gin.Context) {
		c.Writer.Header().Set("Allow", "PUT,OPTIONS")
		c.Status(http.StatusNoContent)
	})
}

func setupListings(r *gin.RouterGroup, u UseCases, log *slog.Logger) {
	r.POST("/listings/filter", func(c *gin.Context) {
		body, ok := readJSONBody(c)
		if !ok {
			return
		}
		items, err := listing.DecodeItems(body)
		if err != nil {
			log.Warn("decode listing items", sl.Err(err))
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
			return
		}

		acc := u.Listing.AddItems(nil, items)
		log.Debug("listing items classified",
			slog.Int("accepted", len(acc.Accepted)),
			slog.Int("excluded", len(acc.Excluded)))
		c.JSON(http.StatusOK, newListingFilterResult(acc))
	})

	r.POST("/listings/item-filters", func(c *gin.Context) {
		body, ok := readJSONBody(c)
		if !ok {
			return
		}
		filters, err := listing.ParseItemFilters(body)
		if err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
			return
		}

		params := listing.BuildItemFiltersForRequest(filters)
		c.JSON(http.StatusOK, ItemFiltersResult{
			Params: params,
			Query:  params.Values().Encode(),
		})
	})

	for _, p := range []string{"/listings/filter", "/listings/item-filters"} {
		r.OPTIONS(p, func(c *gin.Context) {
			c.Writer.Header().Set("Allow", "POST,OPTIONS")
			c.Status(http.StatusNoContent)
		})
	}
}

func readJSONBody(c *gin.Context) ([]byte, bool) {
	if !requireAcceptJSON(c) {
		return nil, false
	}
	if c.ContentType() != "" && c.ContentType() != "application/json" {
		c.JSON(http.StatusUnsupportedMediaType, gin.H{"error": "Use application/json"})
		return nil, false
	}
	body, err := c.GetRawData()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return nil, false
	}
	if len(strings.TrimSpace(string(body))) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "empty body"})
		return nil, false
	}
	return body, true
}

func acceptsJSON(h string) bool {
	if h == "" || h == "*/*" {
		return true
	}
	parts := strings.Split(h, ",")
	for _, p := range parts {
		mt := strings.TrimSpace(strings.SplitN(p, ";", 2)[0])
		if mt == "application/json" || mt == "*/*" {
			return true
		}
	}
	return false
}

func requireAcceptJSON(c *gin.Context) bool {
	if acceptsJSON(c.GetHeader("Accept")) {
		return true
	}
	c.JSON(http.StatusNotAcceptable, gin.H{"error": "Accept application/json only"})
	return false
}
