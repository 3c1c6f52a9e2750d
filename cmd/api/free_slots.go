package main

import (
	"fmt"

	"github.com/spf13/cobra"

	domain "github.com/BruksfildServices01/meeting-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/meeting-scheduler/internal/domain/slot"
	ucAppointment "github.com/BruksfildServices01/meeting-scheduler/internal/usecase/appointment"
)

func newFreeSlotsCmd() *cobra.Command {
	var (
		date     string
		duration int
	)

	cmd := &cobra.Command{
		Use:   "free-slots",
		Short: "Print the free slots of a day",
		Example: `  scheduler free-slots --date 2025-06-11
  scheduler free-slots --date 2025-06-11 --duration 30`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := bootstrap()
			if err != nil {
				return err
			}
			defer log.Sync()

			if !cmd.Flags().Changed("duration") {
				duration = cfg.DefaultSlotMinutes
			}

			hours, err := cfg.WorkingHours()
			if err != nil {
				return err
			}
			gateway, err := newGateway(cmd.Context(), cfg)
			if err != nil {
				return err
			}

			res, err := ucAppointment.
				NewGetFreeSlots(slot.NewFinder(hours), gateway, nil).
				Execute(cmd.Context(), domain.FreeSlotsInput{Date: date, DurationMinutes: duration})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(res.Slots) == 0 {
				fmt.Fprintf(out, "No free slots on %s\n", res.Date)
				return nil
			}
			fmt.Fprintf(out, "Free slots on %s (%s):\n", res.Date, cfg.Location())
			for _, s := range slot.FormatSlotsIn(res.Slots, cfg.Location()) {
				fmt.Fprintf(out, "  %s\n", s)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "day to inspect (YYYY-MM-DD)")
	cmd.Flags().IntVar(&duration, "duration", 0, "minimum slot length in minutes")
	_ = cmd.MarkFlagRequired("date")
	return cmd
}
