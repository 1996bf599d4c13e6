package schema

// DefaultCorpus returns the compiled-in KBO corpus. A YAML override via
// configuration replaces it wholesale.
func DefaultCorpus() *Corpus {
	return &Corpus{
		Tables: []TableDescriptor{
			{
				Name:        "player_season_stats",
				Description: "Season-cumulative batting and pitching statistics per player. Batter rate stats are null for pitchers and vice versa.",
				Columns: []Column{
					{Name: "name", Type: "text", Synonyms: []string{"player", "선수"}},
					{Name: "team", Type: "text", Synonyms: []string{"club", "팀"}},
					{Name: "season", Type: "text", Synonyms: []string{"year", "gyear", "연도"}},
					{Name: "gamenum", Type: "number", Synonyms: []string{"games", "경기수"}},
					// Batting
					{Name: "hra", Type: "number", Synonyms: []string{"avg", "average", "battingAverage", "batting_average", "타율"}},
					{Name: "hr", Type: "number", Synonyms: []string{"homerun", "homeruns", "홈런"}},
					{Name: "h2", Type: "number", Synonyms: []string{"double", "2루타"}},
					{Name: "h3", Type: "number", Synonyms: []string{"triple", "3루타"}},
					{Name: "hit", Type: "number", Synonyms: []string{"hits", "안타"}},
					{Name: "rbi", Type: "number", Synonyms: []string{"타점"}},
					{Name: "run", Type: "number", Synonyms: []string{"runs", "득점"}},
					{Name: "ab", Type: "number", Synonyms: []string{"atbats", "at_bats", "plate_appearances", "타수"}},
					{Name: "sb", Type: "number", Synonyms: []string{"steals", "도루"}},
					{Name: "obp", Type: "number", Synonyms: []string{"onbase", "출루율"}},
					{Name: "slg", Type: "number", Synonyms: []string{"slugging", "장타율"}},
					{Name: "ops", Type: "number"},
					{Name: "isop", Type: "number", Synonyms: []string{"iso"}},
					{Name: "babip", Type: "number"},
					{Name: "wrcplus", Type: "number", Synonyms: []string{"wrc+"}},
					{Name: "woba", Type: "number"},
					{Name: "wpa", Type: "number"},
					// Pitching
					{Name: "era", Type: "number", Synonyms: []string{"평균자책점", "방어율"}},
					{Name: "w", Type: "number", Synonyms: []string{"wins", "승"}},
					{Name: "l", Type: "number", Synonyms: []string{"losses", "패"}},
					{Name: "sv", Type: "number", Synonyms: []string{"saves", "세이브"}},
					{Name: "hold", Type: "number", Synonyms: []string{"holds", "홀드"}},
					{Name: "cg", Type: "number", Synonyms: []string{"complete_games", "완투"}},
					{Name: "sho", Type: "number", Synonyms: []string{"shutouts", "완봉"}},
					{Name: "bf", Type: "number", Synonyms: []string{"batters_faced"}},
					{Name: "inn", Type: "number", Synonyms: []string{"innings", "이닝"}},
					{Name: "er", Type: "number", Synonyms: []string{"earned_runs", "자책점"}},
					{Name: "whip", Type: "number"},
					{Name: "k9", Type: "number", Synonyms: []string{"k/9"}},
					{Name: "bb9", Type: "number", Synonyms: []string{"bb/9"}},
					{Name: "kbb", Type: "number", Synonyms: []string{"k/bb"}},
					{Name: "qs", Type: "number", Synonyms: []string{"quality_starts", "퀄리티스타트"}},
					{Name: "wra", Type: "number", Synonyms: []string{"win_rate", "승률"}},
				},
			},
			{
				Name:        "game_schedule",
				Description: "One row per scheduled game: date, stadium, clubs, scores and status.",
				Columns: []Column{
					{Name: "gameId", Type: "text", Synonyms: []string{"game_id"}},
					{Name: "gday", Type: "date", Synonyms: []string{"date", "날짜"}},
					{Name: "gtime", Type: "text", Synonyms: []string{"time", "시간"}},
					{Name: "stadium", Type: "text", Synonyms: []string{"venue", "구장"}},
					{Name: "home", Type: "text", Synonyms: []string{"home_team"}},
					{Name: "homeName", Type: "text"},
					{Name: "visit", Type: "text", Synonyms: []string{"away", "away_team"}},
					{Name: "visitName", Type: "text"},
					{Name: "hscore", Type: "number", Synonyms: []string{"home_score"}},
					{Name: "vscore", Type: "number", Synonyms: []string{"away_score"}},
					{Name: "winner", Type: "text"},
					{Name: "statusCode", Type: "text", Synonyms: []string{"status"}},
				},
			},
			{
				Name:        "game_result",
				Description: "Post-game analyzed results: decisive plays and notable player lines per finished game.",
				Columns: []Column{
					{Name: "gameId", Type: "text", Synonyms: []string{"game_id"}},
					{Name: "gday", Type: "date", Synonyms: []string{"date"}},
					{Name: "team", Type: "text"},
					{Name: "summary", Type: "text"},
				},
			},
		},

		Exemplars: []IntentExemplar{
			{
				Category:    "stat_leaderboard",
				Keywords:    []string{"타율", "홈런", "순위", "리더", "1위", "leader", "top", "rank"},
				Description: "Who leads the league or a club in a batting or pitching stat",
				Table:       "player_season_stats",
			},
			{
				Category:    "player_stat",
				Keywords:    []string{"성적", "기록", "stats", "record"},
				Description: "A named player's season statistics",
				Table:       "player_season_stats",
			},
			{
				Category:    "schedule_lookup",
				Keywords:    []string{"일정", "경기", "언제", "schedule", "when", "play"},
				Description: "When and where games are scheduled",
				Table:       "game_schedule",
			},
			{
				Category:    "result_lookup",
				Keywords:    []string{"결과", "이겼", "졌", "스코어", "score", "result", "won", "lost"},
				Description: "Scores and outcomes of finished games",
				Table:       "game_result",
			},
		},

		TeamAliases: map[string]string{
			"한화": "HH", "이글스": "HH", "한화이글스": "HH",
			"두산": "OB", "베어스": "OB", "두산베어스": "OB",
			"KIA": "HT", "기아": "HT", "타이거즈": "HT", "기아타이거즈": "HT",
			"키움": "WO", "히어로즈": "WO", "키움히어로즈": "WO",
			"롯데": "LT", "자이언츠": "LT", "롯데자이언츠": "LT",
			"삼성": "SS", "라이온즈": "SS", "삼성라이온즈": "SS",
			"SSG": "SK", "랜더스": "SK", "SSG랜더스": "SK",
			"KT": "KT", "케이티": "KT", "위즈": "KT", "KT위즈": "KT",
			"NC": "NC", "엔씨": "NC", "다이노스": "NC", "NC다이노스": "NC",
			"LG": "LG", "엘지": "LG", "트윈스": "LG", "LG트윈스": "LG",
		},

		TeamNames: map[string]string{
			"HH": "한화 이글스",
			"OB": "두산 베어스",
			"HT": "KIA 타이거즈",
			"WO": "키움 히어로즈",
			"LT": "롯데 자이언츠",
			"SS": "삼성 라이온즈",
			"SK": "SSG 랜더스",
			"KT": "KT 위즈",
			"NC": "NC 다이노스",
			"LG": "LG 트윈스",
		},

		Stadiums: map[string]string{
			"HH": "대전 한화생명 볼파크",
			"OB": "잠실야구장",
			"LG": "잠실야구장",
			"HT": "광주 기아챔피언스필드",
			"WO": "고척 스카이돔",
			"LT": "사직야구장",
			"SS": "대구 삼성라이온즈파크",
			"SK": "인천 SSG랜더스필드",
			"KT": "수원 KT위즈파크",
			"NC": "창원 NC파크",
		},

		PitcherKeywords: []string{
			"era", "w", "l", "sv", "hold", "cg", "sho", "bf", "inn", "er",
			"whip", "k9", "bb9", "kbb", "qs", "wra",
			"투수", "선발", "구원", "마무리", "평균자책점", "방어율", "세이브", "홀드", "이닝",
		},
		BatterKeywords: []string{
			"hra", "hr", "h2", "h3", "hit", "rbi", "run", "ab", "sb",
			"obp", "slg", "ops", "isop", "babip", "wrcplus", "woba", "wpa",
			"타자", "타율", "홈런", "타점", "득점", "안타", "타수", "도루", "출루율", "장타율",
		},
	}
}
