package notify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"neurojobs-engine/internal/domain"
)

func TestRenderReport(t *testing.T) {
	html, err := RenderReport(Report{
		Date:     "2025/06/15",
		NewCount: 2,
		Postings: []domain.Posting{
			{
				Position:     "脑机接口研究员",
				Unit:         "北京脑科学与类脑研究中心",
				Location:     "北京",
				Date:         "2025-06-15",
				Requirements: "神经信号解码、运动控制",
				URL:          "https://www.cibr.ac.cn/join/positions/",
			},
			{
				Position: "神经调控临床研究员",
				Unit:     "天坛医院神经外科",
				Location: "北京",
				Date:     "2025-06-15",
			},
		},
	})
	require.NoError(t, err)

	assert.Contains(t, html, "神经科学招聘日报")
	assert.Contains(t, html, "2 个新岗位")
	assert.Contains(t, html, "脑机接口研究员 - 北京脑科学与类脑研究中心")
	assert.Contains(t, html, `href="https://www.cibr.ac.cn/join/positions/"`)
	// posting without a URL renders no link
	assert.Contains(t, html, "神经调控临床研究员 - 天坛医院神经外科")
}

func TestRenderReportEscapesMarkup(t *testing.T) {
	html, err := RenderReport(Report{
		Date:     "2025/06/15",
		NewCount: 1,
		Postings: []domain.Posting{{Position: "<script>alert(1)</script>"}},
	})
	require.NoError(t, err)
	assert.NotContains(t, html, "<script>alert(1)</script>")
}

func TestKeyringAccountNames(t *testing.T) {
	cfg := testConfig()
	assert.Equal(t, "neurojobs:smtp:bot@smtp.example.cn", SMTPKeyringAccount(cfg))
	assert.Equal(t, "neurojobs:imap:alerts@imap.example.cn", IMAPKeyringAccount(cfg))
}
