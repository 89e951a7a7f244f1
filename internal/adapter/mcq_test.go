package adapter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const mcqDOMHTML = `<html><body>
<div class="question">
  <p class="question-text">Which data structure uses LIFO ordering?</p>
  <ol>
    <li>Queue</li>
    <li>Stack</li>
    <li>Linked list</li>
    <li>Heap</li>
  </ol>
  <span class="answer">B</span>
  <span class="explanation">Push and pop both act on the top.</span>
  <span class="topic">Stacks</span>
</div>
<div class="question">
  <p class="question-text">What is the complexity of binary search?</p>
  <ol>
    <li>O(n)</li>
    <li>O(n log n)</li>
    <li>O(log n)</li>
    <li>O(1)</li>
  </ol>
  <span class="answer">C</span>
</div>
</body></html>`

func TestExtractQuestionsFromDOM(t *testing.T) {
	page := testPage(t, "https://mcq.example/mcq/data-structures/", mcqDOMHTML)

	items := ExtractQuestions(page, "3130702", "mcqbank")
	require.Len(t, items, 2)

	first := items[0]
	assert.Equal(t, "3130702", first.SubjectCode)
	assert.Equal(t, "Which data structure uses LIFO ordering?", first.Question)
	assert.Equal(t, "B", first.Answer)
	assert.Equal(t, "Push and pop both act on the top.", first.Explanation)
	assert.Equal(t, "Stacks", first.Topic)
	assert.Equal(t, "mcqbank", first.SourceName)
	assert.JSONEq(t, `{"A":"Queue","B":"Stack","C":"Linked list","D":"Heap"}`, string(first.Options))

	assert.Equal(t, "C", items[1].Answer)
}

func TestExtractQuestionsFallsBackToText(t *testing.T) {
	page := testPage(t, "https://mcq.example/mcq/ds/", `<html><body><pre>
Q1. Which traversal visits the root first?
(a) Inorder
(b) Preorder
(c) Postorder
(d) Level order
Answer: b

Q2. A complete binary tree of height h has at most how many nodes?
(a) 2^h
(b) 2^(h+1) - 1
(c) h^2
(d) 2h
Answer: B
</pre></body></html>`)

	items := ExtractQuestions(page, "3130702", "mcqbank")
	require.Len(t, items, 2)
	assert.Equal(t, "Which traversal visits the root first?", items[0].Question)
	assert.Equal(t, "B", items[0].Answer)
	assert.Equal(t, "B", items[1].Answer)
}

func TestParseQuestionText(t *testing.T) {
	raw := `
Q1. What does BFS use
internally?
(a) Stack
(b) Queue which is
a FIFO structure
Answer: b

2) Which sort is stable?
(a) Quick sort
(b) Merge sort
Answer: B

Q3. Question with no answer line
(a) Alpha
(b) Beta
`
	items := ParseQuestionText(raw)
	require.Len(t, items, 3)

	assert.Equal(t, "What does BFS use internally?", items[0].Question)
	assert.JSONEq(t, `{"A":"Stack","B":"Queue which is a FIFO structure"}`, string(items[0].Options))
	assert.Equal(t, "B", items[0].Answer)

	assert.Equal(t, "Which sort is stable?", items[1].Question)
	assert.Equal(t, "B", items[1].Answer)

	assert.Equal(t, "Question with no answer line", items[2].Question)
	assert.Empty(t, items[2].Answer)
}

func TestParseQuestionTextIgnoresProse(t *testing.T) {
	assert.Empty(t, ParseQuestionText("Welcome to the question bank.\nPick a chapter to begin."))
}
