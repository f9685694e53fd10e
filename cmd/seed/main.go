// Command main prints or applies seed posts.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"log"
	"os"
	"time"

	"socialmanager/internal/bootstrap"
	"socialmanager/internal/config"
	"socialmanager/internal/database"
	"socialmanager/internal/models"
	"socialmanager/internal/repository"
	"socialmanager/internal/seed"
)

func main() {
	demo := flag.Int("demo", 0, "Generate N fake posts instead of the samples")
	file := flag.String("file", "", "YAML seed file to load instead of the samples")
	fakerSeed := flag.Int64("seed", time.Now().UnixNano(), "Random seed for -demo")
	apply := flag.Bool("apply", false, "Insert the posts into the configured SQL store")
	flag.Parse()

	posts, err := choosePosts(*demo, *file, *fakerSeed)
	if err != nil {
		log.Fatalf("❌ %v", err)
	}

	if !*apply {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(posts); err != nil {
			log.Fatalf("❌ Encode failed: %v", err)
		}
		return
	}

	log.Println("🌱 Post Seeder")
	log.Println("==============")

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if cfg.StoreDriver == config.StoreMemory {
		log.Fatalf("STORE_DRIVER is %q; -apply needs sqlite or postgres", cfg.StoreDriver)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer func() { _ = database.Close(db) }()

	ctx := context.Background()
	repo := repository.NewGormPostRepository(db)

	if *demo > 0 {
		// Generated posts carry no ID and append after existing rows.
		n, err := seed.Apply(ctx, repo, posts)
		if err != nil {
			log.Fatalf("❌ Seeding failed: %v", err)
		}
		log.Printf("✅ Inserted %d posts", n)
		return
	}

	opts := bootstrap.Options{SeedSamples: *file == "", SeedFile: *file}
	if err := bootstrap.SeedIfEmpty(ctx, repo, db, opts); err != nil {
		log.Fatalf("❌ Seeding failed: %v", err)
	}
	log.Println("✅ Seeding complete")
}

func choosePosts(demo int, file string, fakerSeed int64) ([]*models.Post, error) {
	switch {
	case demo > 0:
		return seed.NewFactory(fakerSeed, time.Now().UTC()).Posts(demo), nil
	case file != "":
		return seed.LoadFile(file)
	}
	return seed.Samples(), nil
}
