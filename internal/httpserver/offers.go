package httpserver

import (
	"net/http"

	"ai-store/internal/domain"
	"github.com/gin-gonic/gin"
)

func listOffersHandler(offers OfferService) gin.HandlerFunc {
	return func(c *gin.Context) {
		list, err := offers.ListActive(c.Request.Context())
		if err != nil {
			respondError(c, err)
			return
		}
		if list == nil {
			list = []domain.Offer{}
		}
		c.JSON(http.StatusOK, list)
	}
}
