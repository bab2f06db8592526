package store

import (
	"fmt"

	"digimarket/models"
)

// Seed catalog and reviews: the built-in defaults used on first load or
// whenever a snapshot key cannot be read.

var seedCourses = []models.Product{
	{
		ID:          "c-1",
		Name:        "Full-Stack Web Development Mastery",
		Description: "Kuasai MERN stack dari nol hingga siap kerja. Belajar membangun aplikasi skala enterprise dengan React, Node.js, dan MongoDB.",
		Price:       1850000,
		Rating:      4.9,
		Reviews:     1250,
		Category:    models.CategoryCourse,
		Image:       "https://images.unsplash.com/photo-1498050108023-c5249f4df085",
		Instructor:  "David Miller",
		Features:    []string{"80+ Jam Video", "Proyek Real-world", "Sertifikat", "Review Kode"},
		Modules:     []string{"HTML/CSS Modern", "JavaScript Deep Dive", "React & State Management", "Node.js Backend", "Deployment & DevOps"},
	},
	{
		ID:          "c-2",
		Name:        "Advanced AI Engineering with Python",
		Description: "Pelajari cara membangun model LLM sendiri, implementasi RAG, dan otomasi AI untuk bisnis menggunakan Python.",
		Price:       2450000,
		Rating:      5.0,
		Reviews:     430,
		Category:    models.CategoryCourse,
		Image:       "https://images.unsplash.com/photo-1677442136019-21780ecad995",
		Instructor:  "Dr. Alan Turing",
		Features:    []string{"Kurikulum AI Terbaru", "Akses API Premium", "Sertifikat", "Live Q&A"},
		Modules:     []string{"Python for AI", "Machine Learning Basics", "Natural Language Processing", "Vector Databases", "AI Ethics"},
	},
	{
		ID:          "c-3",
		Name:        "UI/UX Design Masterclass",
		Description: "Ubah cara Anda mendesain antarmuka. Belajar riset pengguna, wireframing, dan prototyping tingkat lanjut dengan Figma.",
		Price:       1200000,
		Rating:      4.8,
		Reviews:     980,
		Category:    models.CategoryCourse,
		Image:       "https://images.unsplash.com/photo-1586717791821-3f44a563eb4c",
		Instructor:  "Sarah Jenkins",
		Features:    []string{"Asset Desain Gratis", "Tugas Mingguan", "Portofolio Review", "Akses Selamanya"},
		Modules:     []string{"Design Thinking", "Visual Hierarchy", "Prototyping in Figma", "Usability Testing", "Freelancing Guide"},
	},
	{
		ID:          "c-4",
		Name:        "Digital Marketing Strategy 2025",
		Description: "Kuasai SEO, SEM, dan Social Media Ads untuk melejitkan bisnis di era digital.",
		Price:       850000,
		Rating:      4.7,
		Reviews:     2100,
		Category:    models.CategoryCourse,
		Image:       "https://images.unsplash.com/photo-1460925895917-afdab827c52f",
		Instructor:  "Marcus Aurelius",
		Features:    []string{"Case Study Nyata", "Template Iklan", "Sertifikat", "Update Berkala"},
		Modules:     []string{"SEO Fundamentals", "Google Ads Strategy", "Content Marketing", "Analytics & Data", "Growth Hacking"},
	},
	{
		ID:          "c-5",
		Name:        "Cyber Security Essentials",
		Description: "Lindungi infrastruktur digital. Belajar ethical hacking, pencegahan intrusi, dan manajemen risiko keamanan.",
		Price:       1550000,
		Rating:      4.9,
		Reviews:     670,
		Category:    models.CategoryCourse,
		Image:       "https://images.unsplash.com/photo-1550751827-4bd374c3f58b",
		Instructor:  "Hacker X",
		Features:    []string{"Virtual Lab", "Tantangan CTF", "E-book Keamanan", "Sertifikat"},
		Modules:     []string{"Networking Security", "Web Penetration Testing", "Cryptography", "Cloud Security", "Incident Response"},
	},
	{
		ID:          "c-6",
		Name:        "Data Science with R and Python",
		Description: "Analisis data besar menjadi wawasan berharga. Belajar statistik, visualisasi, dan modeling data.",
		Price:       1950000,
		Rating:      4.8,
		Reviews:     540,
		Category:    models.CategoryCourse,
		Image:       "https://images.unsplash.com/photo-1551288049-bebda4e38f71",
		Instructor:  "Dr. Maria Lopez",
		Features:    []string{"Dataset Raksasa", "Template Analisis", "Sertifikat", "Job Portal"},
		Modules:     []string{"Data Wrangling", "Exploratory Data Analysis", "Statistical Inference", "Predictive Modeling", "Data Viz"},
	},
	{
		ID:          "c-7",
		Name:        "Mobile App Dev with Flutter",
		Description: "Membangun aplikasi Android dan iOS dari satu codebase. Performa native dengan kemudahan Flutter.",
		Price:       1350000,
		Rating:      4.9,
		Reviews:     1120,
		Category:    models.CategoryCourse,
		Image:       "https://images.unsplash.com/photo-1512941937669-90a1b58e7e9c",
		Instructor:  "James Cook",
		Features:    []string{"Source Code Lengkap", "State Management", "Sertifikat", "Support Tutor"},
		Modules:     []string{"Dart Language", "Flutter Widgets", "Firebase Integration", "State Management (Bloc/Provider)", "App Store Prep"},
	},
	{
		ID:          "c-8",
		Name:        "Professional Photography Course",
		Description: "Dari pemula hingga fotografer profesional. Kuasai komposisi, lighting, dan editing foto.",
		Price:       750000,
		Rating:      4.6,
		Reviews:     890,
		Category:    models.CategoryCourse,
		Image:       "https://images.unsplash.com/photo-1554048612-b6a482bc67e5",
		Instructor:  "Tom Black",
		Features:    []string{"Tugas Lapangan", "Lightroom Presets", "Sertifikat", "Workshop Group"},
		Modules:     []string{"Camera Settings", "Lighting Techniques", "Editing in Lightroom", "Portrait vs Landscape", "Business of Photography"},
	},
	{
		ID:          "c-9",
		Name:        "E-commerce Business Blueprint",
		Description: "Bangun toko online yang menghasilkan. Strategi sourcing produk, manajemen inventaris, dan scale up.",
		Price:       950000,
		Rating:      4.7,
		Reviews:     1540,
		Category:    models.CategoryCourse,
		Image:       "https://images.unsplash.com/photo-1556742049-0cfed4f6a45d",
		Instructor:  "Linda Gates",
		Features:    []string{"List Supplier", "Template Bisnis", "Sertifikat", "Akses Komunitas"},
		Modules:     []string{"Product Research", "Supplier Management", "Sales Psychology", "Customer Retention", "Scaling Strategy"},
	},
	{
		ID:          "c-10",
		Name:        "Project Management Professional (PMP)",
		Description: "Kuasai metodologi Agile, Scrum, dan Waterfall untuk manajemen proyek yang efisien.",
		Price:       1250000,
		Rating:      4.8,
		Reviews:     730,
		Category:    models.CategoryCourse,
		Image:       "https://images.unsplash.com/photo-1531403009284-440f080d1e12",
		Instructor:  "Richard Branson",
		Features:    []string{"Simulasi Ujian PMP", "Template Proyek", "Sertifikat", "Akses Selamanya"},
		Modules:     []string{"Project Lifecycle", "Risk Management", "Stakeholder Communication", "Agile & Scrum", "Budgeting & Timing"},
	},
	{ID: "c-11", Name: "Blockchain Development 101", Description: "Belajar Solidity dan smart contracts.", Price: 2100000, Rating: 4.9, Reviews: 310, Category: models.CategoryCourse, Image: "https://images.unsplash.com/photo-1639762681485-074b7f938ba0", Features: []string{"Web3 focus"}, Modules: []string{"Ethereum Basics", "Solidity", "DApp Creation"}},
	{ID: "c-12", Name: "Game Development with Unity", Description: "Buat game 2D & 3D dari awal.", Price: 1650000, Rating: 4.8, Reviews: 620, Category: models.CategoryCourse, Image: "https://images.unsplash.com/photo-1550745165-9bc0b252726f", Features: []string{"Asset Pack"}, Modules: []string{"C# for Unity", "Physics Engine", "Level Design"}},
	{ID: "c-13", Name: "Copywriting for Conversions", Description: "Seni menulis kata yang menjual.", Price: 650000, Rating: 4.7, Reviews: 2400, Category: models.CategoryCourse, Image: "https://images.unsplash.com/photo-1512486130939-2c4f79935e4f", Features: []string{"Swipe File"}, Modules: []string{"Headline Psychology", "Storytelling", "CTA Optimization"}},
	{ID: "c-14", Name: "Video Editing with Premiere Pro", Description: "Edit video sinematik kelas dunia.", Price: 890000, Rating: 4.8, Reviews: 1450, Category: models.CategoryCourse, Image: "https://images.unsplash.com/photo-1535016120720-40c646bebbfc", Features: []string{"LUTS Included"}, Modules: []string{"Timeline Basics", "Color Grading", "Sound Design"}},
	{ID: "c-15", Name: "Financial Intelligence for Techies", Description: "Manajemen keuangan untuk pekerja IT.", Price: 550000, Rating: 4.9, Reviews: 880, Category: models.CategoryCourse, Image: "https://images.unsplash.com/photo-1554224155-8d04cb21cd6c", Features: []string{"Investment Calculator"}, Modules: []string{"Budgeting", "Stocks & Bonds", "Crypto for Long Term"}},
	{ID: "c-16", Name: "Public Speaking for Leaders", Description: "Bicara dengan percaya diri di depan umum.", Price: 720000, Rating: 4.7, Reviews: 520, Category: models.CategoryCourse, Image: "https://images.unsplash.com/photo-1475721027785-f74eccf877e2", Features: []string{"Live Practice"}, Modules: []string{"Voice Control", "Body Language", "Handling QA"}},
	{ID: "c-17", Name: "Cloud Computing (AWS/Azure)", Description: "Kuasai infrastruktur cloud modern.", Price: 2300000, Rating: 5.0, Reviews: 410, Category: models.CategoryCourse, Image: "https://images.unsplash.com/photo-1544197150-b99a580bb7a8", Features: []string{"Sandbox Environment"}, Modules: []string{"EC2 & S3", "Serverless", "DevOps Pipeline"}},
	{ID: "c-18", Name: "Mental Health for High Achievers", Description: "Menjaga produktivitas tanpa burnout.", Price: 450000, Rating: 4.9, Reviews: 1200, Category: models.CategoryCourse, Image: "https://images.unsplash.com/photo-1506126613408-eca07ce68773", Features: []string{"Mindfulness Audio"}, Modules: []string{"Stress Management", "Focus Techniques", "Work-Life Harmony"}},
	{ID: "c-19", Name: "Go Programming Language Masterclass", Description: "Bahasa pemrograman masa depan dari Google.", Price: 1400000, Rating: 4.8, Reviews: 290, Category: models.CategoryCourse, Image: "https://images.unsplash.com/photo-1515879218367-8466d910aaa4", Features: []string{"Backend Projects"}, Modules: []string{"Go Syntax", "Concurrency", "Building APIs"}},
	{ID: "c-20", Name: "Creative Leadership Mastery", Description: "Pimpin tim kreatif menuju kesuksesan.", Price: 1100000, Rating: 4.7, Reviews: 380, Category: models.CategoryCourse, Image: "https://images.unsplash.com/photo-1522202176988-66273c2fd55f", Features: []string{"Team Audit Tool"}, Modules: []string{"Vision Casting", "Conflict Resolution", "Agile Creativity"}},
}

// SeedProducts builds the full seed catalog: the course list above plus
// generated entries per category. Ratings use fixed steps so the seed
// is identical on every run.
func SeedProducts() []models.Product {
	products := append([]models.Product(nil), seedCourses...)

	ebookNames := []string{"Productivity Hacks", "Wealth Blueprint", "Code Quality", "Diet Mastery", "Travel Guide", "Startup Secret", "Mindset Shift"}
	for i := 0; i < 20; i++ {
		products = append(products, models.Product{
			ID:          fmt.Sprintf("eb-%d", i+1),
			Name:        fmt.Sprintf("%s Vol. %d", ebookNames[i%7], i/7+1),
			Description: "Panduan mendalam yang dirancang untuk memberikan hasil instan dan pengetahuan praktis dalam format digital yang mudah dibawa.",
			Price:       49000 + i*10000,
			Rating:      4.5 + float64(i%5)*0.1,
			Reviews:     100 + i*50,
			Category:    models.CategoryEbook,
			Image:       fmt.Sprintf("https://images.unsplash.com/photo-1512820790803-73c7e9afde80?auto=format&fit=crop&q=80&w=400&mock=%d", i),
			Features:    []string{"PDF & EPUB", "Update Seumur Hidup", "Akses di Semua Perangkat"},
		})
	}

	systemNames := []string{"Business CRM", "Second Brain Notion", "Inventory Manager", "Portfolio Tracker", "Team Hub", "Client Portal", "Habit OS"}
	for i := 0; i < 25; i++ {
		products = append(products, models.Product{
			ID:          fmt.Sprintf("sys-%d", i+1),
			Name:        fmt.Sprintf("%s System %d", systemNames[i%7], i+1),
			Description: "Sistem operasional yang sudah jadi untuk membantu Anda mengelola bisnis, kehidupan, atau proyek dengan efisiensi maksimal.",
			Price:       299000 + i*50000,
			Rating:      4.7 + float64(i%4)*0.075,
			Reviews:     50 + i*20,
			Category:    models.CategorySystem,
			Image:       fmt.Sprintf("https://images.unsplash.com/photo-1504868584819-f8e90526354a?auto=format&fit=crop&q=80&w=400&mock=%d", i),
			Features:    []string{"Siap Pakai", "Tutorial Pemasangan", "Support Teknikal"},
		})
	}

	printableNames := []string{"Daily Planner", "Goal Setter", "Budget Sheet", "Art Print", "Learning Card", "Wall Decor"}
	for i := 0; i < 30; i++ {
		products = append(products, models.Product{
			ID:          fmt.Sprintf("pr-%d", i+1),
			Name:        fmt.Sprintf("%s Bundle %d", printableNames[i%6], i+1),
			Description: "Aset digital berkualitas tinggi yang siap dicetak dari rumah Anda sendiri. Desain estetis dan fungsional.",
			Price:       15000 + i*3000,
			Rating:      4.4 + float64(i%6)*0.1,
			Reviews:     200 + i*10,
			Category:    models.CategoryPrintable,
			Image:       fmt.Sprintf("https://images.unsplash.com/photo-1586281380349-632531db7ed4?auto=format&fit=crop&q=80&w=400&mock=%d", i),
			Features:    []string{"High-Res PDF", "Berbagai Ukuran", "Instan Download"},
		})
	}

	toolkitNames := []string{"Designer Toolkit", "Dev Stack", "Marketing Suite", "Content Kit"}
	for i := 0; i < 10; i++ {
		products = append(products, models.Product{
			ID:          fmt.Sprintf("tk-%d", i+1),
			Name:        fmt.Sprintf("%s Premium %d", toolkitNames[i%4], i+1),
			Description: "Kumpulan resource esensial untuk profesional. Hemat waktu ribuan jam dengan aset siap pakai ini.",
			Price:       149000 + i*40000,
			Rating:      4.8 + float64(i%2)*0.1,
			Reviews:     80 + i*15,
			Category:    models.CategoryToolkit,
			Image:       fmt.Sprintf("https://images.unsplash.com/photo-1581291518857-4e27b48ff24e?auto=format&fit=crop&q=80&w=400&mock=%d", i),
			Features:    []string{"Lisensi Komersial", "Update Gratis", "Dokumentasi Lengkap"},
		})
	}

	templateNames := []string{"Pitch Deck", "Social Media Kit", "Resume Template", "Landing Page", "Email Sequence"}
	for i := 0; i < 30; i++ {
		products = append(products, models.Product{
			ID:          fmt.Sprintf("tm-%d", i+1),
			Name:        fmt.Sprintf("%s %d", templateNames[i%5], i+1),
			Description: "Templat desain profesional yang mudah diedit. Buat presentasi atau konten yang memukau dalam hitungan menit.",
			Price:       75000 + i*10000,
			Rating:      4.6 + float64(i%4)*0.1,
			Reviews:     150 + i*30,
			Category:    models.CategoryTemplate,
			Image:       fmt.Sprintf("https://images.unsplash.com/photo-1512486130939-2c4f79935e4f?auto=format&fit=crop&q=80&w=400&mock=%d", i),
			Features:    []string{"Mudah Diedit", "Video Panduan", "Font Gratis Termasuk"},
		})
	}

	return products
}

// SeedReviews returns the built-in reviews shown before any user
// submission.
func SeedReviews() []models.Review {
	return []models.Review{
		{
			ID:        "r1",
			ProductID: "c-1",
			UserName:  "Alex Johnson",
			Rating:    5,
			Comment:   "Kursus React ini mengubah karir saya. Bagian TypeScript sangat berharga! Saya mendapat pekerjaan senior setelah menyelesaikannya.",
			Date:      "2025-08-20T08:00:00Z",
			VideoURL:  "https://assets.mixkit.co/videos/preview/mixkit-software-developer-working-on-code-on-a-monitor-screen-1729-large.mp4",
		},
		{
			ID:        "r2",
			ProductID: "c-1",
			UserName:  "Sarah Miller",
			Rating:    4,
			Comment:   "Sangat mendalam dan teknis. Tepat seperti yang saya butuhkan untuk pekerjaan di perusahaan besar.",
			Date:      "2025-08-23T10:30:00Z",
		},
		{
			ID:        "r3",
			ProductID: "c-2",
			UserName:  "Kevin Chen",
			Rating:    5,
			Comment:   "Akhirnya ada kursus AI yang benar-benar membangun proyek nyata, bukan hanya teori! Proyek LLM-nya luar biasa.",
			Date:      "2025-08-15T14:00:00Z",
			VideoURL:  "https://assets.mixkit.co/videos/preview/mixkit-white-robot-arm-holding-a-glass-sphere-43224-large.mp4",
		},
		{
			ID:        "r4",
			ProductID: "c-3",
			UserName:  "Budi Hartono",
			Rating:    5,
			Comment:   "UI/UX paling komplit! Figma filenya sangat membantu untuk portofolio saya.",
			Date:      "2025-08-24T09:15:00Z",
		},
	}
}
