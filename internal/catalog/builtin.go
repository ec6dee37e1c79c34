package catalog

import "github.com/cooksync/backend/internal/models"

// BuiltIn returns the demo recipe set bundled with the app. Step durations
// are in seconds and drive the client's step-cook countdown.
func BuiltIn() []Recipe {
	return []Recipe{
		{
			ID:          "recipe-1",
			Title:       "김치찌개",
			Description: "돼지고기와 묵은지로 끓이는 기본 김치찌개",
			Category:    "한식",
			Author:      "요리왕",
			Servings:    2,
			Image:       "/images/recipes/kimchi-jjigae.jpg",
			Tags:        []string{"찌개", "김치", "집밥"},
			Ingredients: []models.Ingredient{
				{Name: "묵은지", Amount: "1/4포기"},
				{Name: "돼지고기 목살", Amount: "200g"},
				{Name: "두부", Amount: "1/2모"},
				{Name: "대파", Amount: "1대"},
			},
			Steps: []models.RecipeStep{
				{ID: 1, Action: "재료 손질", Description: "김치와 고기를 한입 크기로 썰어주세요.", Duration: 180},
				{ID: 2, Action: "고기 볶기", Description: "냄비에 고기를 넣고 중불에서 볶아주세요.", Duration: 240, Tips: "기름이 돌면 김치를 넣을 타이밍이에요."},
				{ID: 3, Action: "끓이기", Description: "김치와 물을 넣고 15분간 끓여주세요.", Duration: 900},
				{ID: 4, Action: "마무리", Description: "두부와 대파를 넣고 5분 더 끓여주세요.", Duration: 300},
			},
		},
		{
			ID:          "recipe-2",
			Title:       "계란말이",
			Description: "폭신하게 말아내는 기본 계란말이",
			Category:    "한식",
			Author:      "민지",
			Servings:    1,
			Image:       "/images/recipes/gyeran-mari.jpg",
			Tags:        []string{"계란", "반찬", "초간단"},
			Ingredients: []models.Ingredient{
				{Name: "계란", Amount: "3개"},
				{Name: "당근", Amount: "1/4개"},
				{Name: "쪽파", Amount: "2줄기"},
			},
			Steps: []models.RecipeStep{
				{ID: 1, Action: "계란물 만들기", Description: "계란을 풀고 잘게 썬 야채를 섞어주세요.", Duration: 120},
				{ID: 2, Action: "부치며 말기", Description: "약불에서 계란물을 붓고 끝에서부터 말아주세요.", Duration: 300, Tips: "불이 세면 속이 익기 전에 겉이 타요."},
				{ID: 3, Action: "모양 잡기", Description: "김발이나 주걱으로 눌러 모양을 잡고 식혀주세요.", Duration: 180},
			},
		},
		{
			ID:          "recipe-3",
			Title:       "크림 파스타",
			Description: "생크림 없이 우유로 만드는 크림 파스타",
			Category:    "양식",
			Author:      "파스타장인",
			Servings:    2,
			Image:       "/images/recipes/cream-pasta.jpg",
			Tags:        []string{"파스타", "우유", "한그릇"},
			Ingredients: []models.Ingredient{
				{Name: "스파게티면", Amount: "180g"},
				{Name: "우유", Amount: "300ml"},
				{Name: "베이컨", Amount: "3줄"},
				{Name: "양파", Amount: "1/2개"},
			},
			Steps: []models.RecipeStep{
				{ID: 1, Action: "면 삶기", Description: "끓는 물에 면을 8분간 삶아주세요.", Duration: 480},
				{ID: 2, Action: "소스 만들기", Description: "베이컨과 양파를 볶다가 우유를 붓고 졸여주세요.", Duration: 420, Tips: "면수를 한 국자 넣으면 소스가 잘 붙어요."},
				{ID: 3, Action: "버무리기", Description: "면을 소스에 넣고 2분간 버무려주세요.", Duration: 120},
			},
		},
		{
			ID:          "recipe-4",
			Title:       "아보카도 명란 비빔밥",
			Description: "으깬 아보카도와 명란으로 비비는 한 그릇",
			Category:    "한식",
			Author:      "자취9단",
			Servings:    1,
			Image:       "/images/recipes/avocado-bibimbap.jpg",
			Tags:        []string{"비빔밥", "아보카도", "자취"},
			Ingredients: []models.Ingredient{
				{Name: "밥", Amount: "1공기"},
				{Name: "아보카도", Amount: "1/2개"},
				{Name: "명란젓", Amount: "1덩이"},
				{Name: "김가루", Amount: "약간"},
			},
			Steps: []models.RecipeStep{
				{ID: 1, Action: "재료 준비", Description: "아보카도를 으깨고 명란은 껍질을 제거해주세요.", Duration: 180},
				{ID: 2, Action: "비비기", Description: "밥 위에 모든 재료를 올리고 참기름을 둘러 비벼주세요.", Duration: 60},
			},
		},
	}
}
