package callout_test

import (
	"testing"

	"github.com/ezerfernandes/mdcallout/internal/callout"
	"github.com/stretchr/testify/assert"
)

func TestContainerNode(t *testing.T) {
	t.Parallel()

	node := callout.NewContainer("question", "question 什么是协议？")

	assert.Equal(t, callout.KindContainer, node.Kind())
	assert.Equal(t, "CalloutContainer", node.Kind().String())
	assert.Equal(t, "question", node.Name)
	assert.Equal(t, "question 什么是协议？", node.Info)
	assert.False(t, node.IsRaw())
}
