package services

import (
	"fmt"

	"github.com/cloudinary/cloudinary-go/v2"
)

// srcsetWidths are the responsive breakpoints the detail page renders.
var srcsetWidths = []int{400, 800, 1200}

// ImageVariant is one srcset candidate for a catalog image.
type ImageVariant struct {
	URL   string `json:"url"`
	Width int    `json:"width"`
}

// ImageService builds responsive delivery URLs for catalog images through
// Cloudinary's fetch mode. The catalog stores plain remote URLs; nothing is
// uploaded and no CDN bookkeeping happens here — this is illustrative srcset
// generation only.
type ImageService struct {
	cld *cloudinary.Cloudinary
}

func NewImageService(cloudName, apiKey, apiSecret string) (*ImageService, error) {
	cld, err := cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		return nil, err
	}
	return &ImageService{cld: cld}, nil
}

// SrcSet returns width-scaled variants of a remote image URL, smallest
// first. Failures fall back to the original URL so a misconfigured cloud
// never breaks the detail page.
func (s *ImageService) SrcSet(imageURL string) []ImageVariant {
	variants := make([]ImageVariant, 0, len(srcsetWidths))
	for _, width := range srcsetWidths {
		asset, err := s.cld.Image(imageURL)
		if err != nil {
			return []ImageVariant{{URL: imageURL}}
		}
		asset.DeliveryType = "fetch"
		asset.Transformation = fmt.Sprintf("c_limit,w_%d,f_auto,q_auto", width)

		url, err := asset.String()
		if err != nil {
			return []ImageVariant{{URL: imageURL}}
		}
		variants = append(variants, ImageVariant{URL: url, Width: width})
	}
	return variants
}
