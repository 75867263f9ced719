package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"geolocator/internal/app"
	"geolocator/internal/models"
	"geolocator/internal/service"

	"github.com/pkg/browser"
	"github.com/spf13/cobra"
)

// openBrowser opens a rendered map. Tests replace it.
var openBrowser = browser.OpenFile

func describe(err error) string {
	switch {
	case errors.Is(err, models.ErrEmptyQuery):
		return "please enter a place name"
	case errors.Is(err, models.ErrNotFound):
		return "location not found"
	case errors.Is(err, models.ErrInvalidCoordinate):
		return "invalid coordinates, use 'latitude longitude' within [-90, 90] and [-180, 180]"
	case errors.Is(err, models.ErrNothingToShow):
		return "nothing to show yet, search for a place first"
	case errors.Is(err, models.ErrRateLimited):
		return "the geocoding service is rate limiting requests, try again later"
	case errors.Is(err, models.ErrLookupFailed):
		return fmt.Sprintf("geocoding service unavailable: %v", err)
	default:
		return err.Error()
	}
}

// saveWarning reports a lookup that worked but was not recorded. Any other error is returned.
func saveWarning(cmd *cobra.Command, loc *models.Location, err error) error {
	if err == nil {
		return nil
	}
	if loc != nil && errors.Is(err, models.ErrSaveFailed) {
		fmt.Fprintf(cmd.ErrOrStderr(), "warning: location found but could not be saved to history: %v\n", err)
		return nil
	}
	return err
}

func newSearchCmd(run runner) *cobra.Command {
	return &cobra.Command{
		Use:   "search <place name>",
		Short: "resolve a place name to coordinates",
		Args:  cobra.MinimumNArgs(1),
		RunE: run(func(cmd *cobra.Command, a *app.App, args []string) error {
			loc, err := a.Geocode.Geocode(cmd.Context(), strings.Join(args, " "))
			if err := saveWarning(cmd, loc, err); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Coordinates: %v, %v\n", loc.Latitude, loc.Longitude)
			if loc.DisplayName != "" {
				fmt.Fprintf(cmd.OutOrStdout(), "Address: %s\n", loc.DisplayName)
			}
			return nil
		}),
	}
}

// parseCoordinate accepts "lat lon" as two arguments or "lat,lon" as one.
func parseCoordinate(args []string) (float64, float64, error) {
	if len(args) == 1 {
		args = strings.Split(args[0], ",")
	}
	if len(args) != 2 {
		return 0, 0, fmt.Errorf("%w: expected latitude and longitude", models.ErrInvalidCoordinate)
	}
	lat, err := strconv.ParseFloat(strings.TrimSpace(args[0]), 64)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: latitude %q", models.ErrInvalidCoordinate, args[0])
	}
	lon, err := strconv.ParseFloat(strings.TrimSpace(args[1]), 64)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: longitude %q", models.ErrInvalidCoordinate, args[1])
	}
	return lat, lon, nil
}

func newReverseCmd(run runner) *cobra.Command {
	return &cobra.Command{
		Use:   "reverse <lat> <lon>",
		Short: "find the address at a coordinate",
		Args:  cobra.RangeArgs(1, 2),
		RunE: run(func(cmd *cobra.Command, a *app.App, args []string) error {
			lat, lon, err := parseCoordinate(args)
			if err != nil {
				return err
			}
			loc, err := a.Reverse.ReverseGeocode(cmd.Context(), lat, lon)
			if err := saveWarning(cmd, loc, err); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Address: %s\n", loc.DisplayName)
			return nil
		}),
	}
}

func newDistanceCmd(run runner) *cobra.Command {
	return &cobra.Command{
		Use:   "distance <from> <to>",
		Short: "great-circle distance between two places",
		Args:  cobra.ExactArgs(2),
		RunE: run(func(cmd *cobra.Command, a *app.App, args []string) error {
			d, err := a.Distance.Distance(cmd.Context(), args[0], args[1])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Distance: %.2f km\n", d.Kilometers)
			return nil
		}),
	}
}

func newMapCmd(run runner) *cobra.Command {
	var (
		lat, lon float64
		pois     bool
		open     bool
	)

	cmd := &cobra.Command{
		Use:   "map [place name]",
		Short: "render an interactive map of a place, a coordinate or the last lookup",
		RunE: run(func(cmd *cobra.Command, a *app.App, args []string) error {
			req := service.MapRequest{Query: strings.Join(args, " "), WithPOIs: pois}
			if cmd.Flags().Changed("lat") || cmd.Flags().Changed("lon") {
				if !cmd.Flags().Changed("lat") || !cmd.Flags().Changed("lon") {
					return fmt.Errorf("%w: both --lat and --lon are required", models.ErrInvalidCoordinate)
				}
				req.Coordinate = &models.Coordinate{Latitude: lat, Longitude: lon}
			}

			doc, err := a.Map.Render(cmd.Context(), req)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Map: %s\n", doc.Path)

			if open {
				if err := openBrowser(doc.Path); err != nil {
					return fmt.Errorf("opening browser: %w", err)
				}
			}
			return nil
		}),
	}

	cmd.Flags().Float64Var(&lat, "lat", 0, "center latitude")
	cmd.Flags().Float64Var(&lon, "lon", 0, "center longitude")
	cmd.Flags().BoolVar(&pois, "pois", false, "add nearby points of interest")
	cmd.Flags().BoolVar(&open, "open", true, "open the map in the browser")
	return cmd
}

func newHistoryCmd(run runner) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "list recorded lookups, newest first",
		Args:  cobra.NoArgs,
		RunE: run(func(cmd *cobra.Command, a *app.App, _ []string) error {
			if !cmd.Flags().Changed("limit") {
				limit = a.Config.HistoryLimit
			}
			records, err := a.History.List(cmd.Context(), limit)
			if err != nil {
				return err
			}
			for _, r := range records {
				result := fmt.Sprintf("%v, %v", r.Latitude, r.Longitude)
				if r.DisplayName != "" {
					result += " (" + r.DisplayName + ")"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Query: %s\nResult: %s\nTime: %s\n\n",
					r.Query, result, r.CreatedAt.Local().Format("2006-01-02 15:04:05"))
			}
			return nil
		}),
	}

	cmd.Flags().IntVar(&limit, "limit", 0, "number of records, 0 for all (default from HISTORY_LIMIT)")
	return cmd
}
