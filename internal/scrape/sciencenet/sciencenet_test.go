package sciencenet

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"neurojobs-engine/internal/scrape"
)

const searchPage = `<!DOCTYPE html>
<html><body>
<ul class="talentList">
  <li>
    <a href="/detail/10001">神经环路研究博士后</a>
    <span class="unit">中国科学院神经科学研究所</span>
    <span class="address">上海</span>
    <p class="intro">在体电生理、神经环路示踪、光学成像</p>
    <span class="time">2025-06-10</span>
  </li>
  <li>
    <a href="https://talent.sciencenet.cn/detail/10002">脑机接口研究员</a>
    <span class="unit">北京脑科学与类脑研究中心</span>
    <span class="address">北京</span>
    <p class="intro">神经信号解码、运动控制、机器学习</p>
    <span class="time">2025/06/12</span>
  </li>
  <li><span class="unit">没有链接的行</span></li>
</ul>
</body></html>`

func TestFetchParsesSearchResults(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(searchPage))
	}))
	defer srv.Close()

	s := New(srv.URL, scrape.NewHostLimiter(100, 10))
	res, err := s.Fetch(context.Background())
	require.NoError(t, err)

	require.Len(t, res.Candidates, 2)

	first := res.Candidates[0]
	assert.Equal(t, "神经环路研究博士后", first.Position)
	assert.Equal(t, "中国科学院神经科学研究所", first.Unit)
	assert.Equal(t, "上海", first.Location)
	assert.Equal(t, "在体电生理、神经环路示踪、光学成像", first.Requirements)
	assert.Equal(t, "2025-06-10", first.Date)
	assert.Equal(t, "https://talent.sciencenet.cn/detail/10001", first.URL)
	assert.Equal(t, "research", string(first.Type))
	assert.Equal(t, "sciencenet", first.Source)

	second := res.Candidates[1]
	assert.Equal(t, "https://talent.sciencenet.cn/detail/10002", second.URL)
	assert.Equal(t, "2025-06-12", second.Date)
}

func TestFetchBadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	s := New(srv.URL, scrape.NewHostLimiter(100, 10))
	_, err := s.Fetch(context.Background())
	assert.Error(t, err)
}

func TestNormalizeDate(t *testing.T) {
	assert.Equal(t, "2025-06-10", normalizeDate("2025-06-10"))
	assert.Equal(t, "2025-06-10", normalizeDate("2025/06/10"))
	assert.Equal(t, "", normalizeDate("三天前"))
	assert.Equal(t, "", normalizeDate(""))
}
