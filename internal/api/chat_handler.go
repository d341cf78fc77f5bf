package api

import (
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"tutorchat/internal/llm"
)

const systemPreamble = "you're a helpful assistant that responds to the user's message in a friendly way. " +
	"you are also a great tutor and explain concepts in a way that is easy to understand. " +
	"you answer all queries using knowledge from the internet."

const maxSources = 5

// ChatHandler answers a user question by asking the model for search keywords,
// searching the web, scraping the top results and asking the model again to
// summarize and explain what was found. All calls run sequentially on the
// request; an upstream failure is fatal to the request.
func ChatHandler(completer Completer, searcher Searcher, fetcher Fetcher) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			InputMessage string `json:"input_message"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
			return
		}
		ctx := c.Request.Context()

		messages := []llm.Message{
			{Role: llm.RoleSystem, Content: systemPreamble},
			{Role: llm.RoleUser, Content: req.InputMessage},
		}
		result, err := completer.Complete(ctx, messages)
		if err != nil {
			log.Printf("[Chat] %s completion failed: %v", c.GetString("requestId"), err)
			c.JSON(http.StatusBadGateway, gin.H{"error": "completion failure", "detail": err.Error()})
			return
		}

		searchResults, err := searcher.Search(ctx, strings.Join(result.SearchKeywords, " "))
		if err != nil {
			log.Printf("[Chat] %s search failed: %v", c.GetString("requestId"), err)
			c.JSON(http.StatusBadGateway, gin.H{"error": "search failure", "detail": err.Error()})
			return
		}

		relevantSources := make([]string, 0, maxSources)
		for _, r := range searchResults {
			if len(relevantSources) == maxSources {
				break
			}
			relevantSources = append(relevantSources, r.Link)
		}

		// Scrape each source in order. A failed fetch becomes an inline
		// sentinel in the corpus so one bad link never aborts the batch.
		relevantInformation := make([]string, 0, len(relevantSources))
		for _, sourceURL := range relevantSources {
			text, err := fetcher.ExtractText(ctx, sourceURL)
			if err != nil {
				text = fmt.Sprintf("Error fetching content from %s: %s", sourceURL, err)
			}
			relevantInformation = append(relevantInformation, text)
		}
		corpus := strings.Join(relevantInformation, " ")

		// Both instructions go onto the same growing conversation; the second
		// completion sees both.
		messages = append(messages,
			llm.Message{Role: llm.RoleSystem, Content: "Summarize the following information: " + corpus},
			llm.Message{Role: llm.RoleSystem, Content: "Give a detailed explanation of the following information: " + corpus},
		)

		summaryResult, err := completer.Complete(ctx, messages)
		if err != nil {
			log.Printf("[Chat] %s summary completion failed: %v", c.GetString("requestId"), err)
			c.JSON(http.StatusBadGateway, gin.H{"error": "completion failure", "detail": err.Error()})
			return
		}
		explanationResult, err := completer.Complete(ctx, messages)
		if err != nil {
			log.Printf("[Chat] %s explanation completion failed: %v", c.GetString("requestId"), err)
			c.JSON(http.StatusBadGateway, gin.H{"error": "completion failure", "detail": err.Error()})
			return
		}

		// Keep the keywords from the first call; everything else is
		// overwritten with the post-search values.
		result.Summary = summaryResult.Summary
		result.FullExplanation = explanationResult.FullExplanation
		result.RelevantSources = relevantSources

		c.JSON(http.StatusOK, gin.H{"my_response": result})
	}
}
