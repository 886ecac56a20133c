package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/travelmate/internal/client/models"
)

// printDestinations renders a recommendation result list to w. An empty list
// prints the localized "no destinations" notice.
func (a *App) printDestinations(w io.Writer, list []models.Destination) {
	if len(list) == 0 {
		fmt.Fprintln(w, a.lang.T("no_destinations_found"))
		return
	}
	for _, d := range list {
		fmt.Fprintf(w, "  %s", d.Name)
		if d.Location != "" {
			fmt.Fprintf(w, " - %s", d.Location)
		}
		if d.Rating > 0 {
			fmt.Fprintf(w, " (%s %.1f)", a.lang.T("rating"), d.Rating)
		}
		fmt.Fprintln(w)
		if d.Description != "" {
			fmt.Fprintf(w, "    %s\n", d.Description)
		}
		if d.Price != "" {
			fmt.Fprintf(w, "    %s: %s\n", a.lang.T("price"), d.Price)
		}
		if len(d.Tags) > 0 {
			fmt.Fprintf(w, "    %s: %s\n", a.lang.T("tags"), strings.Join(d.Tags, ", "))
		}
		if d.Distance > 0 {
			fmt.Fprintf(w, "    %s: %.1f km\n", a.lang.T("distance"), d.Distance)
		}
	}
}

// Recommend asks for an interest keyword and lists matching destinations.
func (a *App) Recommend(ctx context.Context) error {
	interest, err := getSimpleText(a.reader, a.lang.T("your_interests"), os.Stdout)
	if err != nil {
		return err
	}

	fmt.Println(a.lang.T("finding_destinations"))
	list, err := a.travel.RecommendByInterest(ctx, interest)
	if err != nil {
		fmt.Println(a.errMsg(err, "error"))
		return err
	}
	a.printDestinations(os.Stdout, list)
	return nil
}

// Nearby asks for coordinates and a radius and lists destinations around
// that point.
func (a *App) Nearby(ctx context.Context) error {
	lat, err := a.getFloat(a.lang.T("location") + " (lat)")
	if err != nil {
		return err
	}
	lon, err := a.getFloat(a.lang.T("location") + " (lon)")
	if err != nil {
		return err
	}
	radius, err := a.getFloat(a.lang.T("distance") + " (km)")
	if err != nil {
		return err
	}

	fmt.Println(a.lang.T("finding_destinations"))
	list, err := a.travel.RecommendNearby(ctx, lat, lon, radius)
	if err != nil {
		fmt.Println(a.errMsg(err, "error"))
		return err
	}
	a.printDestinations(os.Stdout, list)
	return nil
}

// AIRecommend takes a free-form trip description and asks the AI recommender
// for destinations.
func (a *App) AIRecommend(ctx context.Context) error {
	interest, err := GetMultiline(a.reader, a.lang.T("ai_recommendations"), os.Stdout)
	if err != nil {
		return err
	}

	fmt.Println(a.lang.T("finding_destinations"))
	list, err := a.travel.RecommendAI(ctx, interest)
	if err != nil {
		fmt.Println(a.errMsg(err, "error"))
		return err
	}
	a.printDestinations(os.Stdout, list)
	return nil
}

// Recognize uploads the image at path and prints the recognized landmark.
func (a *App) Recognize(ctx context.Context, path string) error {
	result, err := a.travel.Recognize(ctx, path)
	if err != nil {
		fmt.Println(a.errMsg(err, "error"))
		return err
	}

	fmt.Println(a.lang.T("recognition_result"))
	fmt.Printf("  %s: %s\n", a.lang.T("landmark_name"), result.DestinationName)
	if result.Location != "" {
		fmt.Printf("  %s: %s\n", a.lang.T("location"), result.Location)
	}
	if result.Description != "" {
		fmt.Printf("  %s: %s\n", a.lang.T("description"), result.Description)
	}
	fmt.Printf("  %s: %.0f%%\n", a.lang.T("confidence"), result.Confidence*100)
	return nil
}

func (a *App) getFloat(prompt string) (float64, error) {
	s, err := getSimpleText(a.reader, prompt, os.Stdout)
	if err != nil {
		return 0, err
	}
	return strconv.ParseFloat(s, 64)
}
