package cli

import (
	"embed"
	"io/fs"

	"github.com/arthur-debert/loadorder/pkg/cobrax/topics"
	"github.com/spf13/cobra"
)

//go:embed topics
var topicFiles embed.FS

func initTopics(rootCmd *cobra.Command) error {
	sub, err := fs.Sub(topicFiles, "topics")
	if err != nil {
		return err
	}
	return topics.InitializeWithOptions(rootCmd, sub, topics.Options{
		Renderer: topics.NewGlamourRenderer(),
	})
}
