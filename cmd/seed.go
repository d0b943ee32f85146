package cmd

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/mantasj/gidas/internal/store"
)

var seedUser string

// seedCmd loads a small demo dataset for local development: one student
// with two subjects, a few topics and progress rows.
var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed demo data for local development",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return err
		}

		st, err := store.Open(dbPath)
		if err != nil {
			return err
		}
		defer st.Close()

		fizikaID := uuid.NewString()
		matematikaID := uuid.NewString()

		subjects := []store.Subject{
			{ID: fizikaID, UserID: seedUser, Name: "Fizika", Grade: 11, Teacher: "R. Petrauskienė"},
			{ID: matematikaID, UserID: seedUser, Name: "Matematika", Grade: 11, Teacher: "J. Kazlauskas"},
		}

		score := func(v int) *int { return &v }
		topics := []store.Topic{
			{ID: uuid.NewString(), SubjectID: fizikaID, Title: "Kinematika", Status: store.TopicCompleted, Score: score(82)},
			{ID: uuid.NewString(), SubjectID: fizikaID, Title: "Dinamika", Status: store.TopicInProgress, Score: score(55)},
			{ID: uuid.NewString(), SubjectID: fizikaID, Title: "Tvermės dėsniai", Status: store.TopicLocked},
			{ID: uuid.NewString(), SubjectID: matematikaID, Title: "Funkcijos", Status: store.TopicInProgress, Score: score(64)},
		}

		progress := []store.Progress{
			{ID: uuid.NewString(), UserID: seedUser, SubjectID: fizikaID, Percentage: 45},
			{ID: uuid.NewString(), UserID: seedUser, SubjectID: matematikaID, Percentage: 60},
		}

		db := st.DB()
		for _, s := range subjects {
			if err := db.Create(&s).Error; err != nil {
				return fmt.Errorf("seed subject: %w", err)
			}
		}
		for _, t := range topics {
			if err := db.Create(&t).Error; err != nil {
				return fmt.Errorf("seed topic: %w", err)
			}
		}
		for _, p := range progress {
			if err := db.Create(&p).Error; err != nil {
				return fmt.Errorf("seed progress: %w", err)
			}
		}

		fmt.Printf("Seeded demo data for user %q in %s\n", seedUser, dbPath)
		return nil
	},
}

func init() {
	seedCmd.Flags().StringVar(&seedUser, "user", "local", "User ID to seed data for")
}
