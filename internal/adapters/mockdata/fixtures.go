package mockdata

import (
	"time"

	"github.com/hamsafar-mirza/backend/internal/domain/entities"
)

func strPtr(s string) *string { return &s }

func floatPtr(f float64) *float64 { return &f }

func timePtr(t time.Time) *time.Time { return &t }

func mustTime(value string) time.Time {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		panic("mockdata: bad fixture timestamp " + value)
	}
	return t
}

// Default returns the built-in dataset. Rating aggregates and follower
// counts are intentionally left zero here; Dataset recomputes them from the
// Ratings and Follows collections on every read.
func Default() *Dataset {
	return &Dataset{
		Users: []entities.User{
			{
				UserID:       "user-1",
				Name:         "علی احمدی",
				Username:     "ali_ahmadi",
				Email:        "ali@example.com",
				Phone:        strPtr("09121234567"),
				PasswordHash: "hashed_password_1",
				ProfileImage: strPtr("https://images.unsplash.com/photo-1472099645785-5658abf4ff4e?w=150&q=80"),
				CreatedAt:    mustTime("2024-01-15T10:30:00Z"),
				UserType:     entities.UserTypeRegular,
			},
			{
				UserID:       "user-2",
				Name:         "مریم رضایی",
				Username:     "maryam_rezaei",
				Email:        "maryam@example.com",
				Phone:        strPtr("09129876543"),
				PasswordHash: "hashed_password_2",
				ProfileImage: strPtr("https://images.unsplash.com/photo-1494790108377-be9c29b29330?w=150&q=80"),
				CreatedAt:    mustTime("2024-01-20T14:00:00Z"),
				UserType:     entities.UserTypeRegular,
			},
			{
				UserID:       "user-3",
				Name:         "محمد حسینی",
				Username:     "mohammad_hoseini",
				Email:        "mohammad@example.com",
				Phone:        strPtr("09123456789"),
				PasswordHash: "hashed_password_3",
				ProfileImage: strPtr("https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?w=150&q=80"),
				CreatedAt:    mustTime("2024-02-01T09:00:00Z"),
				UserType:     entities.UserTypeModerator,
			},
			{
				UserID:       "user-4",
				Name:         "سارا کریمی",
				Username:     "sara_karimi",
				Email:        "sara@example.com",
				PasswordHash: "hashed_password_4",
				ProfileImage: strPtr("https://images.unsplash.com/photo-1438761681033-6461ffad8d80?w=150&q=80"),
				CreatedAt:    mustTime("2024-02-10T16:30:00Z"),
				UserType:     entities.UserTypeAdmin,
			},
			{
				UserID:       "user-5",
				Name:         "رضا محمدی",
				Username:     "reza_mohammadi",
				Email:        "reza@example.com",
				PasswordHash: "hashed_password_5",
				ProfileImage: strPtr("https://images.unsplash.com/photo-1500648767791-00dcc994a43e?w=150&q=80"),
				CreatedAt:    mustTime("2024-02-15T11:00:00Z"),
				UserType:     entities.UserTypeRegular,
			},
		},
		RegularUsers: []entities.RegularUser{
			{
				UserID:            "user-1",
				TravelPreferences: []string{"nature", "hiking", "photography"},
				ExperienceLevel:   "intermediate",
			},
			{
				UserID:            "user-2",
				TravelPreferences: []string{"history", "culture", "food"},
				ExperienceLevel:   "advanced",
			},
			{
				UserID:            "user-5",
				TravelPreferences: []string{"adventure", "camping", "wildlife"},
				ExperienceLevel:   "beginner",
			},
		},
		Moderators: []entities.Moderator{
			{
				UserID:          "user-3",
				AssignedRegions: []string{"تهران", "اصفهان", "شیراز"},
				ApprovalCount:   156,
			},
		},
		Admins: []entities.Admin{
			{
				UserID:          "user-4",
				AccessLevel:     5,
				LastAdminAction: timePtr(mustTime("2024-03-01T10:00:00Z")),
			},
		},
		Profiles: []entities.Profile{
			{
				ProfileID:  "profile-1",
				UserID:     "user-1",
				Bio:        strPtr("عاشق سفر و طبیعت گردی هستم. هر سال چندین سفر به نقاط مختلف ایران و جهان دارم."),
				CoverImage: strPtr("https://images.unsplash.com/photo-1506929562872-bb421503ef21?w=800&q=80"),
				Interests:  []string{"کوهنوردی", "عکاسی", "طبیعت گردی", "کمپینگ"},
			},
			{
				ProfileID:  "profile-2",
				UserID:     "user-2",
				Bio:        strPtr("راهنمای گردشگری و علاقه‌مند به تاریخ و فرهنگ ایران. در حال نوشتن کتاب سفرنامه."),
				CoverImage: strPtr("https://images.unsplash.com/photo-1469854523086-cc02fe5d8800?w=800&q=80"),
				Interests:  []string{"تاریخ", "فرهنگ", "غذای محلی", "معماری"},
			},
			{
				ProfileID:  "profile-3",
				UserID:     "user-3",
				Bio:        strPtr("مدیر محتوا و نظارت بر پست‌های منطقه مرکزی ایران."),
				CoverImage: strPtr("https://images.unsplash.com/photo-1501785888041-af3ef285b470?w=800&q=80"),
				Interests:  []string{"مدیریت", "گردشگری", "نویسندگی"},
			},
			{
				ProfileID:  "profile-4",
				UserID:     "user-4",
				Bio:        strPtr("مدیر سیستم همسفر میرزا."),
				CoverImage: strPtr("https://images.unsplash.com/photo-1476514525535-07fb3b4ae5f1?w=800&q=80"),
				Interests:  []string{"توسعه", "مدیریت", "سفر"},
			},
			{
				ProfileID:  "profile-5",
				UserID:     "user-5",
				Bio:        strPtr("تازه شروع به سفر کردم و به دنبال همسفر هستم!"),
				CoverImage: strPtr("https://images.unsplash.com/photo-1530789253388-582c481c54b0?w=800&q=80"),
				Interests:  []string{"ماجراجویی", "کمپینگ", "حیات وحش"},
			},
		},
		Cities: []entities.City{
			{
				CityID:      "city-1",
				Name:        "اصفهان",
				Description: strPtr("نصف جهان، شهر هنر و معماری ایران با میدان نقش جهان"),
				Province:    strPtr("اصفهان"),
				Country:     "ایران",
				Latitude:    floatPtr(32.6546),
				Longitude:   floatPtr(51.6680),
				Image:       strPtr("https://images.unsplash.com/photo-1564668662856-d4c59c83b7b3?w=800&q=80"),
			},
			{
				CityID:      "city-2",
				Name:        "شیراز",
				Description: strPtr("شهر شعر و گل، زادگاه حافظ و سعدی"),
				Province:    strPtr("فارس"),
				Country:     "ایران",
				Latitude:    floatPtr(29.5918),
				Longitude:   floatPtr(52.5836),
				Image:       strPtr("https://images.unsplash.com/photo-1594735157638-09e9fa7a3bac?w=800&q=80"),
			},
			{
				CityID:      "city-3",
				Name:        "یزد",
				Description: strPtr("شهر بادگیرها و اولین شهر خشتی جهان"),
				Province:    strPtr("یزد"),
				Country:     "ایران",
				Latitude:    floatPtr(31.8974),
				Longitude:   floatPtr(54.3569),
				Image:       strPtr("https://images.unsplash.com/photo-1578662996442-48f60103fc96?w=800&q=80"),
			},
			{
				CityID:      "city-4",
				Name:        "کاشان",
				Description: strPtr("شهر گلاب و خانه‌های تاریخی زیبا"),
				Province:    strPtr("اصفهان"),
				Country:     "ایران",
				Latitude:    floatPtr(33.9850),
				Longitude:   floatPtr(51.4100),
				Image:       strPtr("https://images.unsplash.com/photo-1579033485043-25a0c86e1ae0?w=800&q=80"),
			},
			{
				CityID:      "city-5",
				Name:        "تبریز",
				Description: strPtr("شهر اولین‌ها و بازار تاریخی بزرگ"),
				Province:    strPtr("آذربایجان شرقی"),
				Country:     "ایران",
				Latitude:    floatPtr(38.0800),
				Longitude:   floatPtr(46.2919),
				Image:       strPtr("https://images.unsplash.com/photo-1569949381669-ecf31ae8e613?w=800&q=80"),
			},
		},
		Places: []entities.Place{
			{
				PlaceID:     "place-1",
				CityID:      "city-1",
				Name:        "میدان نقش جهان",
				Description: strPtr("یکی از بزرگترین میادین تاریخی جهان و میراث جهانی یونسکو"),
				Latitude:    floatPtr(32.6572),
				Longitude:   floatPtr(51.6780),
				MapURL:      strPtr("https://maps.google.com/?q=32.6572,51.6780"),
				Features:    []string{"میراث یونسکو", "بازار سنتی", "مسجد شیخ لطف‌الله", "کاخ عالی قاپو"},
				Images: []string{
					"https://images.unsplash.com/photo-1564668662856-d4c59c83b7b3?w=800&q=80",
					"https://images.unsplash.com/photo-1589308454676-22c0250c8c9e?w=800&q=80",
				},
			},
			{
				PlaceID:     "place-2",
				CityID:      "city-1",
				Name:        "سی و سه پل",
				Description: strPtr("پل تاریخی و نماد شهر اصفهان بر روی زاینده‌رود"),
				Latitude:    floatPtr(32.6431),
				Longitude:   floatPtr(51.6611),
				MapURL:      strPtr("https://maps.google.com/?q=32.6431,51.6611"),
				Features:    []string{"پل تاریخی", "چایخانه", "منظره شبانه", "پیاده‌روی"},
				Images: []string{
					"https://images.unsplash.com/photo-1565977422167-e68f8b0ea9f9?w=800&q=80",
				},
			},
			{
				PlaceID:     "place-3",
				CityID:      "city-2",
				Name:        "تخت جمشید",
				Description: strPtr("کاخ هخامنشیان و یکی از مهم‌ترین آثار باستانی جهان"),
				Latitude:    floatPtr(29.9349),
				Longitude:   floatPtr(52.8918),
				MapURL:      strPtr("https://maps.google.com/?q=29.9349,52.8918"),
				Features:    []string{"میراث یونسکو", "باستان‌شناسی", "معماری هخامنشی", "موزه"},
				Images: []string{
					"https://images.unsplash.com/photo-1573061218917-5a2b70f9b0c9?w=800&q=80",
				},
			},
			{
				PlaceID:     "place-4",
				CityID:      "city-2",
				Name:        "حافظیه",
				Description: strPtr("آرامگاه حافظ شیرازی، شاعر بزرگ ایران"),
				Latitude:    floatPtr(29.6202),
				Longitude:   floatPtr(52.5481),
				MapURL:      strPtr("https://maps.google.com/?q=29.6202,52.5481"),
				Features:    []string{"آرامگاه", "باغ", "فال حافظ", "کافه سنتی"},
				Images: []string{
					"https://images.unsplash.com/photo-1594735157638-09e9fa7a3bac?w=800&q=80",
				},
			},
			{
				PlaceID:     "place-5",
				CityID:      "city-3",
				Name:        "مسجد جامع یزد",
				Description: strPtr("مسجدی با بلندترین مناره‌های ایران"),
				Latitude:    floatPtr(31.8979),
				Longitude:   floatPtr(54.3556),
				MapURL:      strPtr("https://maps.google.com/?q=31.8979,54.3556"),
				Features:    []string{"معماری اسلامی", "کاشیکاری", "مناره بلند", "محراب"},
				Images: []string{
					"https://images.unsplash.com/photo-1578662996442-48f60103fc96?w=800&q=80",
				},
			},
			{
				PlaceID:     "place-6",
				CityID:      "city-4",
				Name:        "خانه طباطبایی‌ها",
				Description: strPtr("شاهکار معماری قاجاری با حوض و باغچه زیبا"),
				Latitude:    floatPtr(33.9830),
				Longitude:   floatPtr(51.4170),
				MapURL:      strPtr("https://maps.google.com/?q=33.9830,51.4170"),
				Features:    []string{"خانه تاریخی", "معماری قاجار", "عکاسی", "بادگیر"},
				Images: []string{
					"https://images.unsplash.com/photo-1579033485043-25a0c86e1ae0?w=800&q=80",
				},
			},
		},
		Posts: []entities.Post{
			{
				PostID:         "post-1",
				UserID:         "user-1",
				PlaceID:        strPtr("place-1"),
				CityID:         strPtr("city-1"),
				Title:          "یک روز فوق‌العاده در نقش جهان",
				Content:        "امروز به میدان نقش جهان رفتم و واقعاً شگفت‌زده شدم! معماری فوق‌العاده، بازار سنتی پر از صنایع دستی و کاخ عالی قاپو که منظره‌ای بی‌نظیر از کل میدان دارد. پیشنهاد می‌کنم حتماً غروب آفتاب را از بالای عالی قاپو تماشا کنید.",
				ExperienceType: entities.ExperienceVisited,
				ApprovalStatus: entities.ApprovalApproved,
				CreatedAt:      mustTime("2024-02-20T15:30:00Z"),
				Images: []string{
					"https://images.unsplash.com/photo-1564668662856-d4c59c83b7b3?w=800&q=80",
					"https://images.unsplash.com/photo-1589308454676-22c0250c8c9e?w=800&q=80",
				},
			},
			{
				PostID:         "post-2",
				UserID:         "user-2",
				PlaceID:        strPtr("place-3"),
				CityID:         strPtr("city-2"),
				Title:          "سفر به گذشته در تخت جمشید",
				Content:        "تخت جمشید مکانی است که هر ایرانی باید حداقل یکبار ببیند. عظمت و شکوه این بنا واقعاً خیره‌کننده است. توصیه می‌کنم صبح زود بروید تا هم خلوت‌تر باشد و هم نور مناسب‌تری برای عکاسی داشته باشید.",
				ExperienceType: entities.ExperienceVisited,
				ApprovalStatus: entities.ApprovalApproved,
				CreatedAt:      mustTime("2024-02-18T10:00:00Z"),
				Images: []string{
					"https://images.unsplash.com/photo-1573061218917-5a2b70f9b0c9?w=800&q=80",
				},
			},
			{
				PostID:         "post-3",
				UserID:         "user-5",
				PlaceID:        strPtr("place-5"),
				CityID:         strPtr("city-3"),
				Title:          "رویای سفر به یزد",
				Content:        "خیلی دوست دارم یزد را ببینم! شنیده‌ام که شهر بادگیرها و خانه‌های خشتی منحصر به فردی دارد. امیدوارم به زودی بتوانم این سفر را انجام دهم و مسجد جامع یزد را از نزدیک ببینم.",
				ExperienceType: entities.ExperienceImagined,
				ApprovalStatus: entities.ApprovalApproved,
				CreatedAt:      mustTime("2024-02-25T09:00:00Z"),
				Images: []string{
					"https://images.unsplash.com/photo-1578662996442-48f60103fc96?w=800&q=80",
				},
			},
			{
				PostID:         "post-4",
				UserID:         "user-1",
				PlaceID:        strPtr("place-4"),
				CityID:         strPtr("city-2"),
				Title:          "شب‌های حافظیه",
				Content:        "نشستن کنار آرامگاه حافظ در یک شب بهاری، تجربه‌ای معنوی بود. فال گرفتم و شعری خواندم که انگار مخصوص من نوشته شده بود. اگر به شیراز رفتید، شب‌ها را از دست ندهید!",
				ExperienceType: entities.ExperienceVisited,
				ApprovalStatus: entities.ApprovalApproved,
				CreatedAt:      mustTime("2024-03-01T20:00:00Z"),
				Images: []string{
					"https://images.unsplash.com/photo-1594735157638-09e9fa7a3bac?w=800&q=80",
				},
			},
			{
				PostID:         "post-5",
				UserID:         "user-2",
				PlaceID:        strPtr("place-6"),
				CityID:         strPtr("city-4"),
				Title:          "جادوی خانه طباطبایی‌ها",
				Content:        "خانه طباطبایی‌ها یک شاهکار معماری است! حوض وسط حیاط، آینه‌کاری‌های زیبا و بادگیرهایی که هنوز هم کار می‌کنند. هر گوشه این خانه یک کادر عکس است. حتماً دوربین ببرید!",
				ExperienceType: entities.ExperienceVisited,
				ApprovalStatus: entities.ApprovalApproved,
				CreatedAt:      mustTime("2024-03-05T11:30:00Z"),
				Images: []string{
					"https://images.unsplash.com/photo-1579033485043-25a0c86e1ae0?w=800&q=80",
				},
			},
		},
		Comments: []entities.Comment{
			{
				CommentID: "comment-1",
				PostID:    "post-1",
				UserID:    "user-2",
				Content:   "عکس‌های فوق‌العاده‌ای! من هم می‌خواهم برم اصفهان.",
				CreatedAt: mustTime("2024-02-20T18:00:00Z"),
			},
			{
				CommentID: "comment-2",
				PostID:    "post-1",
				UserID:    "user-5",
				Content:   "چقدر قشنگ! کدوم هتل رو پیشنهاد می‌کنید؟",
				CreatedAt: mustTime("2024-02-21T09:30:00Z"),
			},
			{
				CommentID: "comment-3",
				PostID:    "post-2",
				UserID:    "user-1",
				Content:   "واقعاً جای شگفت‌انگیزی است. من سال گذشته رفتم.",
				CreatedAt: mustTime("2024-02-19T14:00:00Z"),
			},
			{
				CommentID: "comment-4",
				PostID:    "post-3",
				UserID:    "user-2",
				Content:   "یزد فوق‌العاده‌ست! حتماً برو و شیرینی‌های محلی رو امتحان کن.",
				CreatedAt: mustTime("2024-02-25T15:00:00Z"),
			},
			{
				CommentID: "comment-5",
				PostID:    "post-4",
				UserID:    "user-3",
				Content:   "توصیف بسیار زیبایی بود. واقعاً احساس کردم اونجام.",
				CreatedAt: mustTime("2024-03-02T10:00:00Z"),
			},
		},
		Ratings: []entities.Rating{
			{UserID: "user-2", PostID: "post-1", Score: 5, CreatedAt: mustTime("2024-02-20T18:30:00Z")},
			{UserID: "user-3", PostID: "post-1", Score: 4, CreatedAt: mustTime("2024-02-21T10:00:00Z")},
			{UserID: "user-5", PostID: "post-1", Score: 5, CreatedAt: mustTime("2024-02-21T12:00:00Z")},
			{UserID: "user-1", PostID: "post-2", Score: 5, CreatedAt: mustTime("2024-02-19T14:30:00Z")},
			{UserID: "user-3", PostID: "post-2", Score: 5, CreatedAt: mustTime("2024-02-19T16:00:00Z")},
			{UserID: "user-5", PostID: "post-2", Score: 5, CreatedAt: mustTime("2024-02-20T09:00:00Z")},
			{UserID: "user-1", PostID: "post-3", Score: 4, CreatedAt: mustTime("2024-02-25T11:00:00Z")},
			{UserID: "user-2", PostID: "post-4", Score: 5, CreatedAt: mustTime("2024-03-02T12:00:00Z")},
			{UserID: "user-3", PostID: "post-4", Score: 5, CreatedAt: mustTime("2024-03-02T15:00:00Z")},
			{UserID: "user-1", PostID: "post-5", Score: 5, CreatedAt: mustTime("2024-03-05T14:00:00Z")},
		},
		Follows: []entities.Follow{
			{FollowerID: "user-1", FollowingID: "user-2", CreatedAt: mustTime("2024-01-25T10:00:00Z")},
			{FollowerID: "user-2", FollowingID: "user-1", CreatedAt: mustTime("2024-01-26T14:00:00Z")},
			{FollowerID: "user-5", FollowingID: "user-1", CreatedAt: mustTime("2024-02-16T09:00:00Z")},
			{FollowerID: "user-5", FollowingID: "user-2", CreatedAt: mustTime("2024-02-16T09:30:00Z")},
			{FollowerID: "user-3", FollowingID: "user-1", CreatedAt: mustTime("2024-02-05T11:00:00Z")},
			{FollowerID: "user-3", FollowingID: "user-2", CreatedAt: mustTime("2024-02-05T11:30:00Z")},
		},
		CompanionRequests: []entities.CompanionRequest{
			{
				RequestID:          "request-1",
				UserID:             "user-5",
				DestinationPlaceID: strPtr("place-1"),
				DestinationCityID:  strPtr("city-1"),
				TravelDate:         "2024-04-15",
				Description:        strPtr("سلام! به دنبال همسفر برای سفر به اصفهان هستم. برنامه‌ریزی کردم ۳ روز بمونم و میدان نقش جهان، پل‌ها و جلفا رو ببینم."),
				Status:             entities.RequestActive,
				CreatedAt:          mustTime("2024-03-10T08:00:00Z"),
				Conditions:         []string{"غیرسیگاری", "علاقه‌مند به عکاسی", "سحرخیز"},
			},
			{
				RequestID:         "request-2",
				UserID:            "user-1",
				DestinationCityID: strPtr("city-3"),
				TravelDate:        "2024-05-01",
				Description:       strPtr("برای عید می‌خوام برم یزد. کسی هست بیاد؟ میخوام ۴ روز بمونم و همه جاهای دیدنی رو ببینم."),
				Status:            entities.RequestActive,
				CreatedAt:         mustTime("2024-03-08T14:00:00Z"),
				Conditions:        []string{"انعطاف‌پذیر", "علاقه‌مند به تاریخ"},
			},
			{
				RequestID:          "request-3",
				UserID:             "user-2",
				DestinationPlaceID: strPtr("place-3"),
				DestinationCityID:  strPtr("city-2"),
				TravelDate:         "2024-03-20",
				Description:        strPtr("سفر تحقیقاتی به تخت جمشید برای نوشتن کتاب. کسی علاقه‌مند به تاریخ هست همراه بشه؟"),
				Status:             entities.RequestCompleted,
				CreatedAt:          mustTime("2024-02-28T10:00:00Z"),
				Conditions:         []string{"علاقه‌مند به باستان‌شناسی", "صبور"},
			},
		},
		CompanionMatches: []entities.CompanionMatch{
			{
				MatchID:         "match-1",
				RequestID:       "request-1",
				CompanionUserID: "user-1",
				Status:          entities.MatchPending,
				Message:         strPtr("سلام! من هم می‌خوام برم اصفهان. عکاسی هم دوست دارم. میتونم بیام؟"),
				CreatedAt:       mustTime("2024-03-10T12:00:00Z"),
			},
			{
				MatchID:         "match-2",
				RequestID:       "request-1",
				CompanionUserID: "user-2",
				Status:          entities.MatchAccepted,
				Message:         strPtr("من قبلاً اصفهان رفتم و می‌تونم راهنمایی کنم!"),
				CreatedAt:       mustTime("2024-03-10T14:00:00Z"),
			},
			{
				MatchID:         "match-3",
				RequestID:       "request-2",
				CompanionUserID: "user-5",
				Status:          entities.MatchPending,
				Message:         strPtr("یزد توی لیست آرزوهامه! با کمال میل میام."),
				CreatedAt:       mustTime("2024-03-09T09:00:00Z"),
			},
			{
				MatchID:         "match-4",
				RequestID:       "request-3",
				CompanionUserID: "user-1",
				Status:          entities.MatchAccepted,
				Message:         strPtr("تاریخ رو خیلی دوست دارم. حتماً میام!"),
				CreatedAt:       mustTime("2024-03-01T15:00:00Z"),
			},
		},
	}
}
