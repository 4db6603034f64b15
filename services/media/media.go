// Package media turns catalog media references into deliverable image URLs.
package media

import (
	"fmt"
	"strings"

	"mahatta/models"

	"github.com/cloudinary/cloudinary-go/v2"
	"go.uber.org/zap"
)

// DefaultTransformation crops catalog images to the card size the storefront renders.
const DefaultTransformation = "c_fill,q_auto,f_auto,w_600"

// Resolver maps a media reference to a URL.
type Resolver interface {
	Resolve(ref string) string
}

// Passthrough returns references unchanged. Used when no media CDN is configured.
type Passthrough struct{}

func (Passthrough) Resolve(ref string) string { return ref }

// CloudinaryResolver builds Cloudinary delivery URLs for public ids. Absolute URLs pass through.
type CloudinaryResolver struct {
	cld            *cloudinary.Cloudinary
	transformation string
	logger         *zap.Logger
}

// NewCloudinaryResolver creates a resolver for the given cloud.
func NewCloudinaryResolver(cloudName, apiKey, apiSecret string, logger *zap.Logger) (*CloudinaryResolver, error) {
	cld, err := cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		return nil, fmt.Errorf("media: failed to initialize Cloudinary: %w", err)
	}
	return &CloudinaryResolver{
		cld:            cld,
		transformation: DefaultTransformation,
		logger:         logger.With(zap.String("component", "media")),
	}, nil
}

func (r *CloudinaryResolver) Resolve(ref string) string {
	if ref == "" || isAbsolute(ref) {
		return ref
	}
	url, err := r.imageURL(ref)
	if err != nil {
		r.logger.Warn("Failed to build delivery URL", zap.String("publicId", ref), zap.Error(err))
		return ref
	}
	return url
}

func (r *CloudinaryResolver) imageURL(publicID string) (string, error) {
	a, err := r.cld.Image(publicID)
	if err != nil {
		return "", fmt.Errorf("get asset: %w", err)
	}
	a.Transformation = r.transformation
	url, err := a.String()
	if err != nil {
		return "", fmt.Errorf("get URL string: %w", err)
	}
	return url, nil
}

// ResolveAll returns copies of ws with their images resolved.
func ResolveAll(r Resolver, ws []models.Wallpaper) []models.Wallpaper {
	if len(ws) == 0 {
		return ws
	}
	out := make([]models.Wallpaper, len(ws))
	for i, w := range ws {
		w.Image = r.Resolve(w.Image)
		out[i] = w
	}
	return out
}

func isAbsolute(ref string) bool {
	return strings.HasPrefix(ref, "https://") || strings.HasPrefix(ref, "http://")
}
