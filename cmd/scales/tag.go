package main

import (
	"fmt"
	"sync"

	"github.com/spf13/cobra"

	"github.com/handiism/musicscales/internal/audio"
)

func newTagCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tag FILE...",
		Short: "Write a scale's key into the ID3 tags of MP3 files",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := a.loadCatalog(cmd.Context())
			if err != nil {
				return err
			}

			name, _ := cmd.Flags().GetString("scale")
			s, err := cat.Find(name)
			if err != nil {
				return err
			}
			if semitones, _ := cmd.Flags().GetInt("transpose"); semitones != 0 {
				if s, err = a.transpose(s, semitones); err != nil {
					return err
				}
			}

			cfg := audio.DefaultTagConfig()
			if !a.settings.TagComment {
				cfg.Comment = audio.TagDoNotModify
			}

			out, errOut := cmd.OutOrStdout(), cmd.ErrOrStderr()
			var mu sync.Mutex
			batch := audio.NewBatch(audio.NewKeyTagger(cfg), a.settings.TagWorkers, func(e audio.ProgressEvent) {
				mu.Lock()
				defer mu.Unlock()
				switch e.Level {
				case audio.LevelVerbose:
					a.logger.Print(e.Message)
				case audio.LevelError, audio.LevelWarning:
					fmt.Fprintln(errOut, e.Message)
				default:
					fmt.Fprintln(out, e.Message)
				}
			})

			res, err := batch.Run(cmd.Context(), args, s)
			if err != nil {
				return err
			}
			if res.Failed > 0 {
				return fmt.Errorf("%d of %d files could not be tagged", res.Failed, len(args))
			}
			return nil
		},
	}
	cmd.Flags().String("scale", "", "scale name to take the key from")
	cmd.Flags().Int("transpose", 0, "semitones to transpose the scale by first")
	_ = cmd.MarkFlagRequired("scale")
	return cmd
}
