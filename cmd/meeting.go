package cmd

import (
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/manav03panchal/planner/internal/model"
	"github.com/manav03panchal/planner/internal/output"
	"github.com/manav03panchal/planner/internal/parser"
	"github.com/manav03panchal/planner/internal/validate"
)

// defaultMeetingLength is used when no end time is given.
const defaultMeetingLength = time.Hour

// Meeting command flags.
var (
	meetingAddFlagEnd          string
	meetingAddFlagLocation     string
	meetingAddFlagLink         string
	meetingAddFlagNotes        string
	meetingAddFlagParticipants []string
	meetingListFlagDate        string
)

// meetingCmd represents the meeting command.
var meetingCmd = &cobra.Command{
	Use:     "meeting",
	Aliases: []string{"meet", "meetings", "m"},
	Short:   "Schedule meetings",
	Long: `Schedule meetings and see what is coming up.

Start and end accept natural language: 'tomorrow 14:00', 'next monday 9am'.
Without --end the meeting runs for an hour.

Examples:
  planner meeting add 'standup' 'tomorrow 09:30'
  planner meeting add '1:1' 'next monday 14:00' --end 'next monday 14:30'
  planner meeting list --date tomorrow
  planner meeting upcoming
  planner meeting rm standup`,
	RunE: runMeetingUpcoming,
}

var meetingAddCmd = &cobra.Command{
	Use:   "add TITLE START",
	Short: "Add a meeting",
	Args:  cobra.ExactArgs(2),
	RunE:  runMeetingAdd,
}

var meetingListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List meetings on a day",
	RunE:    runMeetingList,
}

var meetingUpcomingCmd = &cobra.Command{
	Use:   "upcoming",
	Short: "Show the next meetings",
	RunE:  runMeetingUpcoming,
}

var meetingDeleteCmd = &cobra.Command{
	Use:     "rm TITLE_OR_ID",
	Aliases: []string{"delete", "remove"},
	Short:   "Delete a meeting",
	Args:    cobra.ExactArgs(1),
	RunE:    runMeetingDelete,
}

func init() {
	meetingAddCmd.Flags().StringVarP(&meetingAddFlagEnd, "end", "e", "", "End time")
	meetingAddCmd.Flags().StringVarP(&meetingAddFlagLocation, "location", "l", "", "Location")
	meetingAddCmd.Flags().StringVar(&meetingAddFlagLink, "link", "", "Video call link")
	meetingAddCmd.Flags().StringVar(&meetingAddFlagNotes, "notes", "", "Agenda or notes")
	meetingAddCmd.Flags().StringSliceVarP(&meetingAddFlagParticipants, "participants", "p", nil, "Comma-separated participants")

	meetingListCmd.Flags().StringVarP(&meetingListFlagDate, "date", "d", "today", "Day to list")

	meetingCmd.AddCommand(meetingAddCmd)
	meetingCmd.AddCommand(meetingListCmd)
	meetingCmd.AddCommand(meetingUpcomingCmd)
	meetingCmd.AddCommand(meetingDeleteCmd)
	rootCmd.AddCommand(meetingCmd)
}

func runMeetingAdd(cmd *cobra.Command, args []string) error {
	title := strings.TrimSpace(args[0])
	if err := validate.Title(title); err != nil {
		return err
	}

	start, err := parser.ParseTime(args[1])
	if err != nil {
		return err
	}

	end := start.Add(defaultMeetingLength)
	if meetingAddFlagEnd != "" {
		end, err = parser.ParseTime(meetingAddFlagEnd)
		if err != nil {
			return err
		}
	}

	meeting, err := ctx.Meetings.Add(model.Meeting{
		Title:        title,
		StartTime:    start,
		EndTime:      end,
		Location:     meetingAddFlagLocation,
		Link:         meetingAddFlagLink,
		Notes:        meetingAddFlagNotes,
		Participants: meetingAddFlagParticipants,
	})
	if err != nil {
		return err
	}

	if ctx.IsJSON() {
		return ctx.Formatter.JSON(meeting)
	}
	cli := ctx.CLIFormatter()
	cli.Success("Scheduled " + meeting.Title)
	cli.PrintMeeting(meeting)
	return nil
}

func runMeetingList(cmd *cobra.Command, args []string) error {
	day, err := parser.ParseDate(meetingListFlagDate, ctx.Settings.WeekStart())
	if err != nil {
		return err
	}

	meetings := ctx.Meetings.MeetingsOn(day)
	if ctx.IsJSON() {
		if meetings == nil {
			meetings = []*model.Meeting{}
		}
		return ctx.Formatter.JSON(output.MeetingsResponse{Meetings: meetings})
	}

	cli := ctx.CLIFormatter()
	cli.Title("Meetings on " + day.Format("Mon, 2 Jan"))
	if len(meetings) == 0 {
		cli.Muted("  Nothing scheduled.")
		return nil
	}
	for _, m := range meetings {
		cli.PrintMeeting(m)
	}
	return nil
}

func runMeetingUpcoming(cmd *cobra.Command, args []string) error {
	meetings := ctx.Meetings.Upcoming()
	if ctx.IsJSON() {
		if meetings == nil {
			meetings = []*model.Meeting{}
		}
		return ctx.Formatter.JSON(output.MeetingsResponse{Meetings: meetings})
	}

	cli := ctx.CLIFormatter()
	cli.Title("Upcoming meetings")
	if len(meetings) == 0 {
		cli.Muted("  Nothing on the horizon.")
		return nil
	}
	for _, m := range meetings {
		cli.PrintMeeting(m)
	}
	return nil
}

func runMeetingDelete(cmd *cobra.Command, args []string) error {
	id, err := resolveMeeting(args[0])
	if err != nil {
		return err
	}
	meeting := ctx.Meetings.Get(id)
	if err := ctx.Meetings.Delete(id); err != nil {
		return err
	}

	if ctx.IsJSON() {
		return ctx.Formatter.JSON(map[string]string{"status": "deleted", "id": id})
	}
	ctx.CLIFormatter().Success("Deleted " + meeting.Title)
	return nil
}
