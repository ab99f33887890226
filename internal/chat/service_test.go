package chat_test

import (
	"context"
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"ashara.health/site/core/config"
	"ashara.health/site/internal/chat"
	"ashara.health/site/internal/llm"
)

type fakeStream struct {
	chunks []string
	pos    int
	err    error
	closed bool
}

func (s *fakeStream) Next() bool {
	if s.pos < len(s.chunks) {
		s.pos++
		return true
	}
	return false
}

func (s *fakeStream) Text() string { return s.chunks[s.pos-1] }
func (s *fakeStream) Err() error   { return s.err }
func (s *fakeStream) Close() error { s.closed = true; return nil }

type fakeClient struct {
	streamFn func(ctx context.Context, messages []llm.Message) (llm.Stream, error)
	model    string
}

func (c *fakeClient) StreamChat(ctx context.Context, messages []llm.Message) (llm.Stream, error) {
	if c.streamFn != nil {
		return c.streamFn(ctx, messages)
	}
	return &fakeStream{}, nil
}

func (c *fakeClient) Model() string {
	if c.model != "" {
		return c.model
	}
	return "test-model"
}

var _ = Describe("Service", func() {
	var (
		client   *fakeClient
		svc      chat.Service
		practice config.PracticeConfig
		ctx      context.Context
	)

	BeforeEach(func() {
		ctx = context.Background()
		client = &fakeClient{}
		practice = config.PracticeConfig{
			Name:     "Ashara Health & Wellness",
			Address:  "32406 S Coast Hwy, Laguna Beach, CA 92651",
			Phone:    "(949) 464-4770",
			Email:    "hello@ashara.health",
			Services: []string{"Acupuncture"},
		}
		svc = chat.NewService(client, practice)
	})

	It("sends exactly one more message than the caller supplied", func() {
		var sent []llm.Message
		client.streamFn = func(_ context.Context, messages []llm.Message) (llm.Stream, error) {
			sent = messages
			return &fakeStream{}, nil
		}

		history := []llm.Message{
			{Role: llm.RoleUser, Content: "What are your hours?"},
		}
		stream, err := svc.Stream(ctx, history)
		Expect(err).NotTo(HaveOccurred())
		defer stream.Close()

		Expect(sent).To(HaveLen(len(history) + 1))
	})

	It("injects the system prompt first and preserves turn order", func() {
		var sent []llm.Message
		client.streamFn = func(_ context.Context, messages []llm.Message) (llm.Stream, error) {
			sent = messages
			return &fakeStream{}, nil
		}

		history := []llm.Message{
			{Role: llm.RoleUser, Content: "Do you offer acupuncture?"},
			{Role: llm.RoleAssistant, Content: "Yes, we do."},
			{Role: llm.RoleUser, Content: "How do I book?"},
		}
		stream, err := svc.Stream(ctx, history)
		Expect(err).NotTo(HaveOccurred())
		defer stream.Close()

		Expect(sent[0].Role).To(Equal(llm.RoleSystem))
		Expect(sent[0].Content).To(ContainSubstring("Ashara Health & Wellness"))
		Expect(sent[1:]).To(Equal(history))
	})

	It("does not mutate the caller's history", func() {
		client.streamFn = func(_ context.Context, _ []llm.Message) (llm.Stream, error) {
			return &fakeStream{}, nil
		}

		history := []llm.Message{{Role: llm.RoleUser, Content: "hi"}}
		stream, err := svc.Stream(ctx, history)
		Expect(err).NotTo(HaveOccurred())
		defer stream.Close()

		Expect(history).To(HaveLen(1))
		Expect(history[0].Role).To(Equal(llm.RoleUser))
	})

	It("wraps upstream failures without panicking", func() {
		client.streamFn = func(_ context.Context, _ []llm.Message) (llm.Stream, error) {
			return nil, errors.New("connection refused")
		}

		stream, err := svc.Stream(ctx, []llm.Message{{Role: llm.RoleUser, Content: "hi"}})
		Expect(err).To(HaveOccurred())
		Expect(stream).To(BeNil())
	})

	It("reports the upstream model", func() {
		client.model = "gpt-3.5-turbo"
		Expect(svc.Model()).To(Equal("gpt-3.5-turbo"))
	})
})
