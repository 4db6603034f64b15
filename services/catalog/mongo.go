package catalog

import (
	"context"
	"fmt"

	"mahatta/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// wallpaperDoc is the stored shape of a catalog entry. Position carries the curated order.
type wallpaperDoc struct {
	models.Wallpaper `bson:",inline"`
	Position         int `bson:"position"`
}

// LoadMongoCatalog reads the whole collection once, in curated order, and freezes it.
// The returned catalog never goes back to the database.
func LoadMongoCatalog(ctx context.Context, coll *mongo.Collection, logger *zap.Logger) (*StaticCatalog, error) {
	opts := options.Find().SetSort(bson.D{
		{Key: "position", Value: 1},
		{Key: "_id", Value: 1},
	})
	cur, err := coll.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, fmt.Errorf("find wallpapers: %w", err)
	}
	defer cur.Close(ctx)

	var docs []wallpaperDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode wallpapers: %w", err)
	}

	entries := make([]models.Wallpaper, 0, len(docs))
	for _, d := range docs {
		if d.ID == "" {
			logger.Warn("Skipping wallpaper without id", zap.String("name", d.Name))
			continue
		}
		entries = append(entries, d.Wallpaper)
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("collection %s holds no wallpapers", coll.Name())
	}

	logger.Info("Loaded wallpaper catalog from MongoDB",
		zap.String("collection", coll.Name()),
		zap.Int("count", len(entries)),
	)
	return NewStaticCatalog(entries), nil
}
