// Package fallback supplies a small built-in candidate set for runs where
// every live source failed. The pipeline substitutes it explicitly and logs
// the substitution; the core never fabricates data on its own.
package fallback

import (
	"context"

	"neurojobs-engine/internal/domain"
	"neurojobs-engine/internal/scrape"
)

type Fetcher struct{}

func (Fetcher) Name() string { return "fallback" }

func (Fetcher) Fetch(ctx context.Context) (scrape.Result, error) {
	return scrape.Result{
		Source:     "fallback",
		Candidates: Candidates(),
	}, nil
}

func Candidates() []domain.Candidate {
	return []domain.Candidate{
		{
			Unit:         "深圳先进技术研究院 - 脑科学中心",
			Location:     "广东",
			Position:     "神经调控研究助理",
			Requirements: "超声神经调控、动物行为、电生理记录",
			URL:          "https://www.siat.ac.cn/yjdw/bsh/",
			Type:         domain.CategoryResearch,
			Source:       "fallback",
		},
		{
			Unit:         "华西医院神经疾病中心",
			Location:     "川渝",
			Position:     "脑机接口研发工程师",
			Requirements: "神经信号处理、算法开发、临床验证",
			URL:          "https://www.wchscu.cn/public/recruit.html",
			Type:         domain.CategoryHospital,
			Source:       "fallback",
		},
		{
			Unit:         "海南大学生物医学工程学院",
			Location:     "海南",
			Position:     "神经界面研究员",
			Requirements: "生物材料、电极设计、神经修复",
			URL:          "https://www.hainanu.edu.cn/stm/renshi/",
			Type:         domain.CategoryUniversity,
			Source:       "fallback",
		},
	}
}
