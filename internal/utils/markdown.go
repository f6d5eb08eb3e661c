package utils

import (
	"bytes"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

// bodyRenderer 把帖子正文 (markdown) 渲染成可直接展示的 HTML
type bodyRenderer struct {
	md     goldmark.Markdown
	policy *bluemonday.Policy
}

func newBodyRenderer() *bodyRenderer {
	policy := bluemonday.UGCPolicy()
	policy.AllowImages()
	policy.AllowURLSchemes("http", "https")
	policy.AddTargetBlankToFullyQualifiedLinks(true)
	policy.RequireNoReferrerOnLinks(true)

	return &bodyRenderer{
		md: goldmark.New(
			// 正文来自纯文本输入框，换行即换行
			goldmark.WithExtensions(extension.GFM),
			goldmark.WithRendererOptions(html.WithHardWraps(), html.WithXHTML()),
		),
		policy: policy,
	}
}

func (r *bodyRenderer) render(body string) string {
	body = strings.TrimSpace(body)
	if body == "" {
		return ""
	}

	var buf bytes.Buffer
	if err := r.md.Convert([]byte(body), &buf); err != nil {
		return r.policy.Sanitize(body)
	}
	out := string(r.policy.SanitizeBytes(buf.Bytes()))

	// 只有含图片时才需要 goquery 补属性
	if !strings.Contains(out, "<img") {
		return out
	}
	return EnhanceHTMLContent(out)
}

var threadBody = newBodyRenderer()

// RenderMarkdown converts a thread body to sanitized HTML for the bodyHtml field.
func RenderMarkdown(source string) string {
	return threadBody.render(source)
}
