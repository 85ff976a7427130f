package commands

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/ayushraj/studydeck/internal/models"
)

var subjectsCmd = &cobra.Command{
	Use:     "subjects",
	Aliases: []string{"ls"},
	Short:   "List subjects and their total study time",
	Run: func(cmd *cobra.Command, args []string) {
		st, _ := openStore()
		subjects, err := st.Subjects()
		if err != nil {
			fmt.Printf("Error fetching subjects: %v\n", err)
			return
		}

		if len(subjects) == 0 {
			fmt.Println("No subjects yet. Use 'studydeck subjects add \"name\"' to create one.")
			return
		}

		fmt.Printf("%-4s %-25s %-12s %s\n", "ID", "NAME", "TOTAL", "DESCRIPTION")
		fmt.Println(strings.Repeat("-", 70))
		for _, subject := range subjects {
			name := subject.Name
			if len(name) > 23 {
				name = name[:20] + "..."
			}
			total := formatDuration(time.Duration(subject.TotalStudyTime) * time.Second)
			fmt.Printf("%-4d %-25s %-12s %s\n", subject.ID, name, total, subject.Description)
		}
	},
}

var subjectsAddCmd = &cobra.Command{
	Use:   "add [name]",
	Short: "Create a subject",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if args[0] == "" {
			fmt.Println("Error: subject name cannot be empty")
			return
		}
		st, _ := openStore()
		description, _ := cmd.Flags().GetString("description")
		color, _ := cmd.Flags().GetString("color")

		subject := models.Subject{Name: args[0], Description: description, ColorClass: color}
		if err := st.CreateSubject(&subject); err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		fmt.Printf("Created subject #%d: %s\n", subject.ID, subject.Name)
	},
}

var subjectsRmCmd = &cobra.Command{
	Use:   "rm [id]",
	Short: "Delete a subject and everything referencing it",
	Long:  "Delete a subject. Its study sessions, planner items and flashcards go with it.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		id, err := strconv.ParseUint(args[0], 10, 32)
		if err != nil {
			fmt.Printf("Error: invalid subject ID '%s'\n", args[0])
			return
		}
		st, _ := openStore()
		if err := st.DeleteSubject(uint(id)); err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		fmt.Printf("Deleted subject #%d\n", id)
	},
}

func init() {
	subjectsAddCmd.Flags().StringP("description", "d", "", "Subject description")
	subjectsAddCmd.Flags().StringP("color", "c", "", "Color tag for the subject")
	subjectsCmd.AddCommand(subjectsAddCmd)
	subjectsCmd.AddCommand(subjectsRmCmd)
}
