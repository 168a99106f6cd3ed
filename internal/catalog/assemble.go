package catalog

import (
	"image"
	"strconv"

	"github.com/genricoloni/radiod/internal/domain"
)

// Assemble maps a resolved station and its artwork to a media item.
// Display fields mirror the canonical ones so browsers can show the item
// without further lookups.
func Assemble(st Station, art image.Image) domain.MediaItem {
	return domain.MediaItem{
		MediaID:     st.ID,
		Title:       st.Title,
		Genre:       st.Genre,
		MediaURI:    st.Source,
		AlbumArtURI: st.Image,
		Flags:       domain.FlagPlayable,

		DisplayTitle:   st.Title,
		DisplayIconURI: st.Image,
		AlbumArt:       art,

		// The status is set explicitly so Extras is always allocated and
		// session metadata updates carry it.
		DownloadStatus: domain.StatusNotDownloaded,
		Extras: map[string]string{
			domain.ExtraDownloadStatus: strconv.Itoa(int(domain.StatusNotDownloaded)),
			domain.ExtraSite:           st.Site,
		},
	}
}
