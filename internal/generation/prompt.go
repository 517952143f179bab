package generation

import (
	"productdb/internal/labels"
	"productdb/internal/textutil"
)

// maxPromptText bounds the raw text placed in the user message.
const maxPromptText = 10000

func SystemPrompt() string {
	return `You are a skincare copywriter. Given a product title and raw scraped product info from Amazon, you produce:
1. A polished, helpful product description (for a skincare app) with clear sections: a short intro sentence, then "Key Benefits:" or "Key Features:" with bullet points, then "How to Use:" with brief steps, then "Customer Feedback:" or "What customers say:" with one short paragraph. Use newlines between sections. Write in a neutral, informative tone. Do not invent specific stats or reviews; generalize from the raw text.
2. A comma-separated list of skin-concern labels chosen ONLY from this exact list (use these strings verbatim, any casing): ` + labels.PromptList() + `. Pick only the labels that clearly apply to the product (2-5 labels typically). Output nothing else for labels.`
}

func UserPrompt(title, rawText string) string {
	return "Product title:\n" + title +
		"\n\nRaw product info (scraped):\n" + textutil.Truncate(rawText, maxPromptText) +
		"\n\nRespond with a JSON object only, no markdown, with two keys: \"description\" (string, use \\n for newlines) and \"labels\" (string, comma-separated from the allowed list only)."
}
