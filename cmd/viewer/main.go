package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/jengzang/victory-garden-go/internal/client"
	"github.com/jengzang/victory-garden-go/internal/config"
	"github.com/jengzang/victory-garden-go/internal/garden"
	"github.com/jengzang/victory-garden-go/internal/mapview"
	"github.com/jengzang/victory-garden-go/internal/mapwidget"
)

func main() {
	actions := flag.String("actions", "", "comma-separated actions: toggle-produce, toggle-climate, radius, radius-climate, gradient, gradient-climate")
	companion := flag.String("companion", "", "plant whose companions to show")
	timeout := flag.Duration("timeout", 10*time.Second, "per-request timeout for data fetches")
	flag.Parse()

	cfg := config.Load()
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	planner, err := garden.NewPlanner(cfg.GridSize, garden.DefaultPlants, nil)
	if err != nil {
		log.Fatal("Failed to initialize garden planner:", err)
	}
	if *companion != "" {
		if err := planner.ChooseCompanionPlant(*companion); err != nil {
			log.Printf("Companion lookup: %v", err)
		}
	}
	fmt.Printf("Garden: %dx%d grid, %d plants\n", planner.Grid().Dimension(), planner.Grid().Dimension(), len(planner.Palette().Plants()))
	fmt.Printf("Companions for %s: good=%s bad=%s\n",
		planner.CompanionPlant(),
		strings.Join(planner.GoodCompanions(), ", "),
		strings.Join(planner.BadCompanions(), ", "))

	source := client.New(cfg.APIBaseURL, &http.Client{Timeout: *timeout})
	viewer, err := mapview.New(mapview.Config{
		CenterLat: cfg.MapCenterLat,
		CenterLng: cfg.MapCenterLng,
		Zoom:      cfg.MapZoom,
	}, mapwidget.MemoryFactory, source, nil)
	if err != nil {
		log.Fatal("Failed to initialize map:", err)
	}
	defer viewer.Close()

	viewer.Start(ctx)
	viewer.Wait()

	for _, action := range strings.Split(*actions, ",") {
		if err := apply(ctx, viewer, strings.TrimSpace(action)); err != nil {
			log.Printf("Action %q failed: %v", action, err)
		}
	}

	status, err := viewer.Status(ctx)
	if err != nil {
		log.Fatal("Failed to read viewer status:", err)
	}
	fmt.Printf("Map: %d markers, produce heatmap %s, climate heatmap %s\n", status.Markers, status.Produce, status.Climate)
}

var errUnknownAction = errors.New("unknown action")

func apply(ctx context.Context, v *mapview.Viewer, action string) error {
	var err error
	switch action {
	case "":
	case "toggle-produce":
		_, err = v.Toggle(ctx, mapview.ProduceLayer)
	case "toggle-climate":
		_, err = v.Toggle(ctx, mapview.ClimateLayer)
	case "radius":
		_, err = v.ChangeRadius(ctx, mapview.ProduceLayer)
	case "radius-climate":
		_, err = v.ChangeRadius(ctx, mapview.ClimateLayer)
	case "gradient":
		_, err = v.ChangeGradient(ctx, mapview.ProduceLayer)
	case "gradient-climate":
		_, err = v.ChangeGradient(ctx, mapview.ClimateLayer)
	default:
		err = errUnknownAction
	}
	return err
}
