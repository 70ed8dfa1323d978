// Command seedcheck validates seed dataset files before they are used with
// SEED_FILE.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"

	"eureka/catalog"

	"github.com/joho/godotenv"
)

func main() {
	godotenv.Load()

	seedDir := os.Getenv("SEED_DIR")
	if len(os.Args) > 1 {
		seedDir = os.Args[1]
	}
	if seedDir == "" {
		seedDir = "./catalog/seed"
	}

	files, err := os.ReadDir(seedDir)
	if err != nil {
		log.Fatal("Failed to read seed directory:", err)
	}

	var yamlFiles []string
	for _, file := range files {
		switch filepath.Ext(file.Name()) {
		case ".yaml", ".yml":
			yamlFiles = append(yamlFiles, file.Name())
		}
	}
	sort.Strings(yamlFiles)

	for _, file := range yamlFiles {
		log.Printf("Checking seed: %s", file)

		seed, err := catalog.LoadSeedFile(filepath.Join(seedDir, file))
		if err != nil {
			log.Fatalf("Invalid seed %s: %v", file, err)
		}

		authors := catalog.NewAuthorDirectory(seed.Authors, seed.UserModels())
		stats, err := catalog.New(seed.Projects, authors).Dashboard(context.Background())
		if err != nil {
			log.Fatalf("Failed to aggregate %s: %v", file, err)
		}

		log.Printf("✓ %s (projects=%d pending=%d authors=%d users=%d)",
			file, stats.TotalProjects, stats.PendingProjects, authors.Len(), len(seed.Users))
	}

	fmt.Println("\nAll seed files are valid!")
}
