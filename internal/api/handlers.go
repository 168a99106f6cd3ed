package api

import (
	"net/http"
	"strconv"

	"github.com/disintegration/imaging"
	"github.com/genricoloni/radiod/internal/browse"
	"github.com/genricoloni/radiod/internal/domain"
	"github.com/gin-gonic/gin"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

type itemResponse struct {
	ID             string            `json:"id"`
	Title          string            `json:"title"`
	Genre          string            `json:"genre"`
	Stream         string            `json:"stream"`
	Artwork        string            `json:"artwork"`
	Playable       bool              `json:"playable"`
	DownloadStatus int               `json:"download_status"`
	Extras         map[string]string `json:"extras"`
}

type browseResponse struct {
	MediaID  string         `json:"media_id"`
	Leaf     bool           `json:"leaf"`
	Item     *itemResponse  `json:"item,omitempty"`
	Children []itemResponse `json:"children"`
}

func toItemResponse(item domain.MediaItem) itemResponse {
	return itemResponse{
		ID:             item.MediaID,
		Title:          item.DisplayTitle,
		Genre:          item.Genre,
		Stream:         item.MediaURI,
		Artwork:        item.AlbumArtURI,
		Playable:       item.Playable(),
		DownloadStatus: int(item.DownloadStatus),
		Extras:         item.Extras,
	}
}

// getStatus reports the music source state and the last load outcome
func (s *Server) getStatus(c *gin.Context) {
	res := s.catalog.Result()

	body := gin.H{
		"state":          s.catalog.State().String(),
		"source":         res.Source,
		"stations":       len(res.Items),
		"artwork_errors": len(multierr.Errors(res.ArtworkErr)),
		"elapsed_ms":     res.Elapsed.Milliseconds(),
	}
	if res.Err != nil {
		body["error"] = res.Err.Error()
	}
	c.JSON(http.StatusOK, body)
}

// getChildren lists the children of a browse node. Known leaves answer with
// an empty list, unknown ids with 404.
func (s *Server) getChildren(c *gin.Context) {
	id := c.Param("mediaId")
	tree := s.catalog.Tree()

	switch tree.Kind(id) {
	case browse.NodeRoot:
		children, _ := tree.Children(id)
		resp := browseResponse{MediaID: id, Children: make([]itemResponse, 0, len(children))}
		for _, item := range children {
			resp.Children = append(resp.Children, toItemResponse(item))
		}
		c.JSON(http.StatusOK, resp)

	case browse.NodeLeaf:
		item, _ := tree.Item(id)
		ir := toItemResponse(item)
		c.JSON(http.StatusOK, browseResponse{MediaID: id, Leaf: true, Item: &ir, Children: []itemResponse{}})

	default:
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown media id", "media_id": id})
	}
}

// getArtwork serves the resolved station icon as PNG
func (s *Server) getArtwork(c *gin.Context) {
	id := c.Param("mediaId")
	item, ok := s.catalog.Tree().Item(id)
	if !ok || item.AlbumArt == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown media id", "media_id": id})
		return
	}

	b := item.AlbumArt.Bounds()
	c.Header("Content-Type", "image/png")
	c.Header("X-Artwork-Size", strconv.Itoa(b.Dx())+"x"+strconv.Itoa(b.Dy()))
	c.Status(http.StatusOK)
	if err := imaging.Encode(c.Writer, item.AlbumArt, imaging.PNG); err != nil {
		_ = c.Error(err)
		s.logger.Warn("Failed to encode artwork", zap.String("media_id", id), zap.Error(err))
	}
}
