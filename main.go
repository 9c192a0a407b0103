package main

import "github.com/summarize-anything/summarize-api/cmd"

// @title           Summarize Anything API
// @version         1.0.0
// @description     Media summarization pipeline: transcription, summaries, chapters, quizzes, sentiment and translation
// @contact.name    API Support
// @contact.url     https://github.com/summarize-anything/summarize-api
// @license.name    MIT
// @license.url     https://opensource.org/licenses/MIT
// @host            localhost:8080
// @BasePath        /
// @schemes         http https
func main() {
	cmd.Execute()
}
