package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	searchErrors "github.com/gcbaptista/pdf-phrase-search/internal/errors"
	"github.com/gcbaptista/pdf-phrase-search/services"
)

// NoQueryMessage is the error body returned when q is missing or blank.
const NoQueryMessage = "No query"

// SearchHandler handles GET /search?q=<phrase>&mode=<all|sample>.
// mode defaults to "sample"; any other value returns counts only.
func (api *API) SearchHandler(c *gin.Context) {
	req := SearchRequest{
		Query: c.Query("q"),
		Mode:  c.DefaultQuery("mode", "sample"),
	}

	if result := ValidateSearchRequest(&req); result.HasErrors() {
		c.JSON(http.StatusBadRequest, gin.H{"error": NoQueryMessage})
		return
	}

	resp, err := api.searcher.Search(c.Request.Context(), req.Query, services.ParseMode(req.Mode))
	if err != nil {
		if errors.Is(err, searchErrors.ErrEmptyQuery) {
			c.JSON(http.StatusBadRequest, gin.H{"error": NoQueryMessage})
			return
		}
		log.Error().Err(err).Str("request_id", c.GetString(requestIDKey)).Msg("search failed")
		SendSearchError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
