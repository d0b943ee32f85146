package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mantasj/gidas/internal/app"
	"github.com/mantasj/gidas/internal/tutor"
)

var (
	chatUser    string
	chatMode    string
	chatSubject string
	chatTopic   string
	chatGrade   int
)

var chatCmd = &cobra.Command{
	Use:   "chat [message]",
	Short: "Send one message to the tutor from the terminal",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return err
		}

		a, err := app.New(dbPath)
		if err != nil {
			return err
		}
		defer a.Close()

		response, err := a.Tutor.Chat(cmd.Context(), tutor.ChatRequest{
			UserID:      chatUser,
			Message:     strings.Join(args, " "),
			Mode:        chatMode,
			SubjectName: chatSubject,
			Topic:       chatTopic,
			Grade:       chatGrade,
		})
		if err != nil {
			return err
		}

		fmt.Println(response)
		return nil
	},
}

func init() {
	chatCmd.Flags().StringVar(&chatUser, "user", "local", "User ID")
	chatCmd.Flags().StringVar(&chatMode, "mode", "guide", "Chat mode: guide or tutor")
	chatCmd.Flags().StringVar(&chatSubject, "subject", "", "Subject name (tutor mode)")
	chatCmd.Flags().StringVar(&chatTopic, "topic", "", "Current topic")
	chatCmd.Flags().IntVar(&chatGrade, "grade", 0, "Grade level (default: resolved from subject)")
}
