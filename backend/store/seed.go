package store

import "vidyashiksha/backend/models"

// seed loads the demo dataset. Everything here is static; IDs are stable so
// the admin flows and tests can reference them directly.
func (s *Store) seed() {
	s.instructors = []models.Instructor{
		{
			ID:             "inst-1",
			Name:           "Dr. Priya Sharma",
			Bio:            "PhD in Mathematics from IIT Delhi with 15 years of teaching experience. Specializes in making complex concepts simple and accessible.",
			AvatarURL:      "https://images.unsplash.com/photo-1494790108377-be9c29b29330?w=200&h=200&fit=crop",
			Qualifications: []string{"PhD Mathematics, IIT Delhi", "M.Sc Mathematics", "B.Ed"},
		},
		{
			ID:             "inst-2",
			Name:           "Prof. Rajesh Kumar",
			Bio:            "Former CBSE examiner and author of multiple science textbooks. Known for practical experiments and real-world applications.",
			AvatarURL:      "https://images.unsplash.com/photo-1472099645785-5658abf4ff4e?w=200&h=200&fit=crop",
			Qualifications: []string{"M.Sc Physics, JNU", "B.Ed", "CBSE Examiner"},
		},
		{
			ID:             "inst-3",
			Name:           "Ms. Anita Desai",
			Bio:            "English literature expert with experience in ICSE and CBSE curriculum. Focuses on comprehensive language development.",
			AvatarURL:      "https://images.unsplash.com/photo-1438761681033-6461ffad8d80?w=200&h=200&fit=crop",
			Qualifications: []string{"MA English Literature", "Cambridge CELTA", "B.Ed"},
		},
	}

	s.courses = []models.Course{
		{
			ID:           "course-1",
			Title:        "Mathematics Foundation",
			Description:  "Build a strong foundation in mathematics with comprehensive coverage of algebra, geometry, and arithmetic. Perfect for students looking to strengthen their problem-solving skills.",
			Subject:      "Mathematics",
			ClassLevel:   8,
			ThumbnailURL: "https://images.unsplash.com/photo-1635070041078-e363dbe005cb?w=800&h=450&fit=crop",
			LearningOutcomes: []string{
				"Master algebraic expressions and equations",
				"Understand geometric principles and theorems",
				"Develop problem-solving strategies",
				"Apply mathematical concepts to real-world problems",
			},
			CreatedAt: "2024-01-15T00:00:00Z",
			UpdatedAt: "2024-01-15T00:00:00Z",
		},
		{
			ID:           "course-2",
			Title:        "Science Fundamentals",
			Description:  "Explore the fascinating world of science through physics, chemistry, and biology. Hands-on experiments and visual demonstrations make learning engaging.",
			Subject:      "Science",
			ClassLevel:   7,
			ThumbnailURL: "https://images.unsplash.com/photo-1532094349884-543bc11b234d?w=800&h=450&fit=crop",
			LearningOutcomes: []string{
				"Understand physical laws and principles",
				"Learn chemical reactions and equations",
				"Explore biological systems and life processes",
				"Conduct safe laboratory experiments",
			},
			CreatedAt: "2024-01-10T00:00:00Z",
			UpdatedAt: "2024-01-10T00:00:00Z",
		},
		{
			ID:           "course-3",
			Title:        "English Language & Literature",
			Description:  "Develop comprehensive English skills including grammar, vocabulary, reading comprehension, and creative writing. Prepare for examinations with confidence.",
			Subject:      "English",
			ClassLevel:   9,
			ThumbnailURL: "https://images.unsplash.com/photo-1456513080510-7bf3a84b82f8?w=800&h=450&fit=crop",
			LearningOutcomes: []string{
				"Master English grammar and usage",
				"Expand vocabulary effectively",
				"Improve reading comprehension skills",
				"Write clear and engaging essays",
			},
			CreatedAt: "2024-01-12T00:00:00Z",
			UpdatedAt: "2024-01-12T00:00:00Z",
		},
		{
			ID:           "course-4",
			Title:        "Mathematics Advanced",
			Description:  "Advanced mathematics course covering trigonometry, coordinate geometry, and statistics. Designed for students aiming for competitive examinations.",
			Subject:      "Mathematics",
			ClassLevel:   10,
			ThumbnailURL: "https://images.unsplash.com/photo-1509228468518-180dd4864904?w=800&h=450&fit=crop",
			LearningOutcomes: []string{
				"Master trigonometric identities and applications",
				"Solve coordinate geometry problems",
				"Understand statistics and probability",
				"Prepare for board examinations",
			},
			CreatedAt: "2024-01-08T00:00:00Z",
			UpdatedAt: "2024-01-08T00:00:00Z",
		},
		{
			ID:           "course-5",
			Title:        "Social Studies Comprehensive",
			Description:  "Complete coverage of history, geography, civics, and economics. Understand the world around you through engaging lessons and discussions.",
			Subject:      "Social Studies",
			ClassLevel:   6,
			ThumbnailURL: "https://images.unsplash.com/photo-1524995997946-a1c2e315a42f?w=800&h=450&fit=crop",
			LearningOutcomes: []string{
				"Learn about ancient and modern history",
				"Understand geographical concepts and maps",
				"Know your rights and civic duties",
				"Grasp basic economic principles",
			},
			CreatedAt: "2024-01-05T00:00:00Z",
			UpdatedAt: "2024-01-05T00:00:00Z",
		},
		{
			ID:           "course-6",
			Title:        "Hindi Language",
			Description:  "Comprehensive Hindi course covering grammar, literature, and composition. Perfect for students who want to excel in Hindi examinations.",
			Subject:      "Hindi",
			ClassLevel:   5,
			ThumbnailURL: "https://images.unsplash.com/photo-1481627834876-b7833e8f5570?w=800&h=450&fit=crop",
			LearningOutcomes: []string{
				"Master Hindi grammar and vocabulary",
				"Read and understand Hindi literature",
				"Write essays and letters effectively",
				"Improve spoken Hindi",
			},
			CreatedAt: "2024-01-03T00:00:00Z",
			UpdatedAt: "2024-01-03T00:00:00Z",
		},
	}

	s.batches = []models.Batch{
		{
			ID:           "batch-1a",
			CourseID:     "course-1",
			InstructorID: "inst-1",
			Title:        "January Live Batch",
			Description:  "Live interactive sessions with Dr. Priya Sharma. Daily doubt clearing and weekly tests.",
			Price:        4999,
			Currency:     "INR",
			StartDate:    "2025-02-01",
			EndDate:      "2025-05-31",
			Schedule:     "Mon, Wed, Fri - 4:00 PM",
			IsLive:       true,
			MaxStudents:  50,
			CreatedAt:    "2024-12-01T00:00:00Z",
			UpdatedAt:    "2024-12-01T00:00:00Z",
		},
		{
			ID:           "batch-1b",
			CourseID:     "course-1",
			InstructorID: "inst-1",
			Title:        "Self-Paced Learning",
			Description:  "Learn at your own pace with recorded lectures. Access for 6 months.",
			Price:        2999,
			Currency:     "INR",
			StartDate:    "2025-01-15",
			EndDate:      "2025-07-15",
			IsLive:       false,
			CreatedAt:    "2024-12-01T00:00:00Z",
			UpdatedAt:    "2024-12-01T00:00:00Z",
		},
		{
			ID:           "batch-2a",
			CourseID:     "course-2",
			InstructorID: "inst-2",
			Title:        "February Live Batch",
			Description:  "Interactive science classes with virtual lab demonstrations.",
			Price:        5499,
			Currency:     "INR",
			StartDate:    "2025-02-15",
			EndDate:      "2025-06-15",
			Schedule:     "Tue, Thu - 5:00 PM",
			IsLive:       true,
			MaxStudents:  40,
			CreatedAt:    "2024-12-05T00:00:00Z",
			UpdatedAt:    "2024-12-05T00:00:00Z",
		},
		{
			ID:           "batch-2b",
			CourseID:     "course-2",
			InstructorID: "inst-2",
			Title:        "Recorded Course",
			Description:  "Complete recorded lectures with experiment videos.",
			Price:        3499,
			Currency:     "INR",
			StartDate:    "2025-01-01",
			EndDate:      "2025-12-31",
			IsLive:       false,
			CreatedAt:    "2024-12-05T00:00:00Z",
			UpdatedAt:    "2024-12-05T00:00:00Z",
		},
		{
			ID:           "batch-3a",
			CourseID:     "course-3",
			InstructorID: "inst-3",
			Title:        "March Live Batch",
			Description:  "Live English sessions with interactive discussions and writing practice.",
			Price:        4499,
			Currency:     "INR",
			StartDate:    "2025-03-01",
			EndDate:      "2025-07-01",
			Schedule:     "Mon, Wed, Fri - 3:00 PM",
			IsLive:       true,
			MaxStudents:  35,
			CreatedAt:    "2024-12-10T00:00:00Z",
			UpdatedAt:    "2024-12-10T00:00:00Z",
		},
		{
			ID:           "batch-4a",
			CourseID:     "course-4",
			InstructorID: "inst-1",
			Title:        "Board Exam Prep - Live",
			Description:  "Intensive board exam preparation with daily practice and mock tests.",
			Price:        6999,
			Currency:     "INR",
			StartDate:    "2025-01-20",
			EndDate:      "2025-03-15",
			Schedule:     "Daily - 6:00 PM",
			IsLive:       true,
			MaxStudents:  60,
			CreatedAt:    "2024-12-15T00:00:00Z",
			UpdatedAt:    "2024-12-15T00:00:00Z",
		},
		{
			ID:           "batch-5a",
			CourseID:     "course-5",
			InstructorID: "inst-2",
			Title:        "Self-Paced Complete Course",
			Description:  "Learn social studies at your own pace with interactive maps and timelines.",
			Price:        2499,
			Currency:     "INR",
			StartDate:    "2025-01-01",
			EndDate:      "2025-12-31",
			IsLive:       false,
			CreatedAt:    "2024-12-01T00:00:00Z",
			UpdatedAt:    "2024-12-01T00:00:00Z",
		},
		{
			ID:           "batch-6a",
			CourseID:     "course-6",
			InstructorID: "inst-3",
			Title:        "Hindi Foundation - Recorded",
			Description:  "Complete Hindi course with grammar lessons and literature study.",
			Price:        1999,
			Currency:     "INR",
			StartDate:    "2025-01-01",
			EndDate:      "2025-12-31",
			IsLive:       false,
			CreatedAt:    "2024-12-01T00:00:00Z",
			UpdatedAt:    "2024-12-01T00:00:00Z",
		},
	}

	s.classes = []models.Class{
		{
			ID:              "class-1",
			BatchID:         "batch-1a",
			Title:           "Introduction to Algebra",
			Description:     "Understanding variables, constants, and basic algebraic expressions.",
			OrderNo:         1,
			DurationMinutes: 45,
			IsLive:          true,
			ScheduledAt:     "2025-02-01T16:00:00Z",
			CreatedAt:       "2024-12-01T00:00:00Z",
			UpdatedAt:       "2024-12-01T00:00:00Z",
		},
		{
			ID:              "class-2",
			BatchID:         "batch-1a",
			Title:           "Linear Equations in One Variable",
			Description:     "Solving linear equations and understanding the balancing method.",
			OrderNo:         2,
			DurationMinutes: 50,
			IsLive:          true,
			ScheduledAt:     "2025-02-03T16:00:00Z",
			CreatedAt:       "2024-12-01T00:00:00Z",
			UpdatedAt:       "2024-12-01T00:00:00Z",
		},
		{
			ID:              "class-3",
			BatchID:         "batch-1a",
			Title:           "Linear Equations in Two Variables",
			Description:     "Understanding graphs and solving systems of equations.",
			OrderNo:         3,
			DurationMinutes: 55,
			IsLive:          true,
			ScheduledAt:     "2025-02-05T16:00:00Z",
			CreatedAt:       "2024-12-01T00:00:00Z",
			UpdatedAt:       "2024-12-01T00:00:00Z",
		},
		{
			ID:              "class-4",
			BatchID:         "batch-1a",
			Title:           "Polynomials - Basics",
			Description:     "Introduction to polynomials, degrees, and standard forms.",
			OrderNo:         4,
			DurationMinutes: 45,
			IsLive:          false,
			CreatedAt:       "2024-12-01T00:00:00Z",
			UpdatedAt:       "2024-12-01T00:00:00Z",
		},
		{
			ID:              "class-5",
			BatchID:         "batch-1a",
			Title:           "Factorization Techniques",
			Description:     "Methods to factorize algebraic expressions.",
			OrderNo:         5,
			DurationMinutes: 50,
			IsLive:          false,
			CreatedAt:       "2024-12-01T00:00:00Z",
			UpdatedAt:       "2024-12-01T00:00:00Z",
		},
	}

	s.classContents = []models.ClassContent{
		{
			ID:              "content-4-1",
			ClassID:         "class-4",
			Type:            "video",
			Title:           "Understanding Polynomials",
			URL:             "https://example.com/videos/polynomials-intro.mp4",
			DurationSeconds: 1800,
			OrderNo:         1,
			CreatedAt:       "2024-12-01T00:00:00Z",
		},
		{
			ID:              "content-4-2",
			ClassID:         "class-4",
			Type:            "video",
			Title:           "Degree of Polynomials",
			URL:             "https://example.com/videos/polynomials-degree.mp4",
			DurationSeconds: 900,
			OrderNo:         2,
			CreatedAt:       "2024-12-01T00:00:00Z",
		},
		{
			ID:              "content-5-1",
			ClassID:         "class-5",
			Type:            "video",
			Title:           "Factorization Methods",
			URL:             "https://example.com/videos/factorization.mp4",
			DurationSeconds: 2100,
			OrderNo:         1,
			CreatedAt:       "2024-12-01T00:00:00Z",
		},
	}

	s.supplementary = []models.SupplementaryContent{
		{
			ID:          "supp-1-1",
			ClassID:     "class-1",
			Type:        "pdf",
			Title:       "Algebra Basics - Practice Problems",
			URL:         "https://example.com/pdfs/algebra-practice.pdf",
			Description: "50 practice problems for self-study",
			OrderNo:     1,
			CreatedAt:   "2024-12-01T00:00:00Z",
		},
		{
			ID:          "supp-1-2",
			ClassID:     "class-1",
			Type:        "link",
			Title:       "Khan Academy - Algebra Introduction",
			URL:         "https://www.khanacademy.org/math/algebra",
			Description: "Additional learning resource",
			OrderNo:     2,
			CreatedAt:   "2024-12-01T00:00:00Z",
		},
		{
			ID:          "supp-4-1",
			ClassID:     "class-4",
			Type:        "pdf",
			Title:       "Polynomials - Formula Sheet",
			URL:         "https://example.com/pdfs/polynomials-formulas.pdf",
			Description: "Quick reference for all polynomial formulas",
			OrderNo:     1,
			CreatedAt:   "2024-12-01T00:00:00Z",
		},
	}

	s.liveClasses = []models.LiveClass{
		{
			ID:              "live-1",
			ClassID:         "class-1",
			MeetingURL:      "https://zoom.us/j/123456789",
			MeetingID:       "123 456 789",
			MeetingPassword: "math2025",
			Platform:        "zoom",
			StartsAt:        "2025-02-01T16:00:00Z",
			EndsAt:          "2025-02-01T16:45:00Z",
			CreatedAt:       "2024-12-01T00:00:00Z",
		},
		{
			ID:              "live-2",
			ClassID:         "class-2",
			MeetingURL:      "https://zoom.us/j/987654321",
			MeetingID:       "987 654 321",
			MeetingPassword: "math2025",
			Platform:        "zoom",
			StartsAt:        "2025-02-03T16:00:00Z",
			EndsAt:          "2025-02-03T16:50:00Z",
			CreatedAt:       "2024-12-01T00:00:00Z",
		},
	}

	s.activities = []models.Activity{
		{
			ID:          "activity-1-1",
			ClassID:     "class-1",
			Type:        "reading_comprehension",
			Title:       "Understanding Variables in Real Life",
			Description: "Read about how variables are used in everyday scenarios",
			OrderNo:     1,
			CreatedAt:   "2024-12-01T00:00:00Z",
		},
		{
			ID:          "activity-1-2",
			ClassID:     "class-1",
			Type:        "assessment",
			Title:       "Algebra Basics Quiz",
			Description: "Test your understanding of algebra fundamentals",
			OrderNo:     2,
			CreatedAt:   "2024-12-01T00:00:00Z",
		},
		{
			ID:          "activity-4-1",
			ClassID:     "class-4",
			Type:        "reading_comprehension",
			Title:       "History of Polynomials",
			Description: "Learn about the historical development of polynomials",
			OrderNo:     1,
			CreatedAt:   "2024-12-01T00:00:00Z",
		},
	}

	s.readings = []models.ReadingComprehension{
		{
			ID:         "rc-1",
			ActivityID: "activity-1-1",
			Content: `# Understanding Variables in Real Life

Variables are not just abstract mathematical concepts—they are all around us in our daily lives. Understanding how variables work can help us make sense of the world and solve real problems.

## What is a Variable?

A variable is a symbol that represents a value that can change. In mathematics, we often use letters like x, y, or z to represent variables. But in real life, variables represent quantities that we measure, count, or calculate.

## Examples from Daily Life

### 1. Temperature Throughout the Day

The temperature outside changes throughout the day. If we use T to represent temperature, we might say:
- T = 20°C in the morning
- T = 28°C at noon
- T = 22°C in the evening

Here, T is a variable because its value changes.

### 2. Your Age

Your age is also a variable! Each year on your birthday, your age increases by 1. If we call your age A, then next year A will be one more than it is now.

### 3. Money in Your Piggy Bank

The amount of money M in your savings changes when you add or spend money. This is another example of a variable in action.

## Why Variables Matter

Understanding variables helps us:
- Describe patterns and relationships
- Solve problems systematically
- Make predictions about the future
- Communicate mathematical ideas clearly

## Practice Thinking

Think about three more examples of variables in your daily life. What changes? What stays the same? This kind of thinking is the foundation of algebraic reasoning.`,
			WordCount:            270,
			EstimatedReadingTime: 3,
			CreatedAt:            "2024-12-01T00:00:00Z",
		},
	}

	s.assessments = []models.Assessment{
		{
			ID:               "assess-1",
			ActivityID:       "activity-1-2",
			Title:            "Algebra Basics Quiz",
			Instructions:     "Answer all questions. Each question carries equal marks. You have 15 minutes to complete this quiz.",
			TimeLimitMinutes: 15,
			PassingScore:     60,
			CreatedAt:        "2024-12-01T00:00:00Z",
		},
	}

	s.questions = []models.Question{
		{
			ID:            "q-1",
			AssessmentID:  "assess-1",
			Type:          "multiple_choice",
			QuestionText:  "Which of the following is a variable?",
			Options:       []string{"5", "x", "10 + 2", "π"},
			CorrectAnswer: "x",
			Points:        10,
			OrderNo:       1,
			CreatedAt:     "2024-12-01T00:00:00Z",
		},
		{
			ID:            "q-2",
			AssessmentID:  "assess-1",
			Type:          "multiple_choice",
			QuestionText:  "In the expression 3x + 5, what is the coefficient of x?",
			Options:       []string{"3", "5", "x", "3x"},
			CorrectAnswer: "3",
			Points:        10,
			OrderNo:       2,
			CreatedAt:     "2024-12-01T00:00:00Z",
		},
		{
			ID:            "q-3",
			AssessmentID:  "assess-1",
			Type:          "true_false",
			QuestionText:  "An algebraic expression must contain at least one variable.",
			CorrectAnswer: "true",
			Points:        10,
			OrderNo:       3,
			CreatedAt:     "2024-12-01T00:00:00Z",
		},
		{
			ID:            "q-4",
			AssessmentID:  "assess-1",
			Type:          "multiple_choice",
			QuestionText:  "What is the constant term in 2y - 7?",
			Options:       []string{"2", "y", "-7", "2y"},
			CorrectAnswer: "-7",
			Points:        10,
			OrderNo:       4,
			CreatedAt:     "2024-12-01T00:00:00Z",
		},
	}

	s.students = []models.StudentProfile{
		{
			ID:        "student-1",
			UserID:    "user-1",
			FirstName: "Arjun",
			LastName:  "Patel",
			Age:       14,
			Grade:     8,
			Location:  "Mumbai, Maharashtra",
			Phone:     "+91 98765 43210",
			AvatarURL: "https://images.unsplash.com/photo-1506794778202-cad84cf45f1d?w=200&h=200&fit=crop",
			CreatedAt: "2024-06-01T00:00:00Z",
			UpdatedAt: "2024-12-01T00:00:00Z",
		},
		{
			ID:        "student-2",
			UserID:    "user-2",
			FirstName: "Priya",
			LastName:  "Singh",
			Age:       13,
			Grade:     7,
			Location:  "Delhi, India",
			Phone:     "+91 98765 43211",
			AvatarURL: "https://images.unsplash.com/photo-1494790108377-be9c29b29330?w=200&h=200&fit=crop",
			CreatedAt: "2024-07-15T00:00:00Z",
			UpdatedAt: "2024-12-01T00:00:00Z",
		},
		{
			ID:        "student-3",
			UserID:    "user-3",
			FirstName: "Rahul",
			LastName:  "Sharma",
			Age:       15,
			Grade:     9,
			Location:  "Bangalore, Karnataka",
			Phone:     "+91 98765 43212",
			AvatarURL: "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?w=200&h=200&fit=crop",
			CreatedAt: "2024-08-20T00:00:00Z",
			UpdatedAt: "2024-12-01T00:00:00Z",
		},
		{
			ID:        "student-4",
			UserID:    "user-4",
			FirstName: "Ananya",
			LastName:  "Gupta",
			Age:       12,
			Grade:     6,
			Location:  "Chennai, Tamil Nadu",
			Phone:     "+91 98765 43213",
			AvatarURL: "https://images.unsplash.com/photo-1438761681033-6461ffad8d80?w=200&h=200&fit=crop",
			CreatedAt: "2024-09-10T00:00:00Z",
			UpdatedAt: "2024-12-01T00:00:00Z",
		},
		{
			ID:        "student-5",
			UserID:    "user-5",
			FirstName: "Vikram",
			LastName:  "Reddy",
			Age:       16,
			Grade:     10,
			Location:  "Hyderabad, Telangana",
			Phone:     "+91 98765 43214",
			AvatarURL: "https://images.unsplash.com/photo-1500648767791-00dcc994a43e?w=200&h=200&fit=crop",
			CreatedAt: "2024-10-05T00:00:00Z",
			UpdatedAt: "2024-12-01T00:00:00Z",
		},
	}

	s.users = []models.User{
		{ID: "user-1", Email: "arjun@example.com", Role: "student", CreatedAt: "2024-06-01T00:00:00Z", UpdatedAt: "2024-06-01T00:00:00Z"},
		{ID: "user-2", Email: "priya@example.com", Role: "student", CreatedAt: "2024-07-15T00:00:00Z", UpdatedAt: "2024-07-15T00:00:00Z"},
		{ID: "user-3", Email: "rahul@example.com", Role: "student", CreatedAt: "2024-08-20T00:00:00Z", UpdatedAt: "2024-08-20T00:00:00Z"},
		{ID: "user-4", Email: "ananya@example.com", Role: "student", CreatedAt: "2024-09-10T00:00:00Z", UpdatedAt: "2024-09-10T00:00:00Z"},
		{ID: "user-5", Email: "vikram@example.com", Role: "student", CreatedAt: "2024-10-05T00:00:00Z", UpdatedAt: "2024-10-05T00:00:00Z"},
		{ID: "user-admin", Email: "admin@vidyashiksha.com", Role: "admin", CreatedAt: "2024-01-01T00:00:00Z", UpdatedAt: "2024-01-01T00:00:00Z"},
	}

	s.enrollments = []models.Enrollment{
		{
			ID:                 "enroll-1",
			UserID:             "user-1",
			BatchID:            "batch-1a",
			EnrolledAt:         "2024-12-20T00:00:00Z",
			Status:             "active",
			ProgressPercentage: 40,
			CreatedAt:          "2024-12-20T00:00:00Z",
			UpdatedAt:          "2025-01-10T00:00:00Z",
		},
		{
			ID:                 "enroll-2",
			UserID:             "user-1",
			BatchID:            "batch-2b",
			EnrolledAt:         "2024-12-25T00:00:00Z",
			Status:             "active",
			ProgressPercentage: 15,
			CreatedAt:          "2024-12-25T00:00:00Z",
			UpdatedAt:          "2025-01-08T00:00:00Z",
		},
		{
			ID:                 "enroll-3",
			UserID:             "user-2",
			BatchID:            "batch-1a",
			EnrolledAt:         "2024-12-22T00:00:00Z",
			Status:             "active",
			ProgressPercentage: 25,
			CreatedAt:          "2024-12-22T00:00:00Z",
			UpdatedAt:          "2025-01-05T00:00:00Z",
		},
		{
			ID:                 "enroll-4",
			UserID:             "user-3",
			BatchID:            "batch-3a",
			EnrolledAt:         "2024-12-28T00:00:00Z",
			Status:             "active",
			ProgressPercentage: 10,
			CreatedAt:          "2024-12-28T00:00:00Z",
			UpdatedAt:          "2025-01-12T00:00:00Z",
		},
	}

	s.orders = []models.Order{
		{
			ID:        "order-1",
			UserID:    "user-1",
			BatchID:   "batch-1a",
			Amount:    4999,
			Currency:  "INR",
			Status:    "confirmed",
			CreatedAt: "2024-12-20T00:00:00Z",
			UpdatedAt: "2024-12-20T00:00:00Z",
		},
		{
			ID:        "order-2",
			UserID:    "user-1",
			BatchID:   "batch-2b",
			Amount:    3499,
			Currency:  "INR",
			Status:    "confirmed",
			CreatedAt: "2024-12-25T00:00:00Z",
			UpdatedAt: "2024-12-25T00:00:00Z",
		},
		{
			ID:        "order-3",
			UserID:    "user-2",
			BatchID:   "batch-1a",
			Amount:    4999,
			Currency:  "INR",
			Status:    "confirmed",
			CreatedAt: "2024-12-22T00:00:00Z",
			UpdatedAt: "2024-12-22T00:00:00Z",
		},
		{
			ID:        "order-4",
			UserID:    "user-3",
			BatchID:   "batch-3a",
			Amount:    4499,
			Currency:  "INR",
			Status:    "confirmed",
			CreatedAt: "2024-12-28T00:00:00Z",
			UpdatedAt: "2024-12-28T00:00:00Z",
		},
	}

	s.payments = []models.Payment{
		{
			ID:            "payment-1",
			OrderID:       "order-1",
			Amount:        4999,
			Currency:      "INR",
			Method:        "upi",
			Status:        "completed",
			TransactionID: "TXN123456789",
			PaidAt:        "2024-12-20T00:05:00Z",
			CreatedAt:     "2024-12-20T00:00:00Z",
		},
		{
			ID:            "payment-2",
			OrderID:       "order-2",
			Amount:        3499,
			Currency:      "INR",
			Method:        "card",
			Status:        "completed",
			TransactionID: "TXN987654321",
			PaidAt:        "2024-12-25T00:03:00Z",
			CreatedAt:     "2024-12-25T00:00:00Z",
		},
		{
			ID:            "payment-3",
			OrderID:       "order-3",
			Amount:        4999,
			Currency:      "INR",
			Method:        "upi",
			Status:        "completed",
			TransactionID: "TXN456789123",
			PaidAt:        "2024-12-22T00:02:00Z",
			CreatedAt:     "2024-12-22T00:00:00Z",
		},
		{
			ID:            "payment-4",
			OrderID:       "order-4",
			Amount:        4499,
			Currency:      "INR",
			Method:        "netbanking",
			Status:        "completed",
			TransactionID: "TXN789123456",
			PaidAt:        "2024-12-28T00:04:00Z",
			CreatedAt:     "2024-12-28T00:00:00Z",
		},
	}
}
