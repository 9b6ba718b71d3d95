package catalog

// Fixed seed lists. Catalog generation is a pure function of these lists and
// record indices, so every process start yields the same collections.

type companySeed struct {
	Name     string
	Logo     string
	Industry string
	Website  string
	Desc     string
}

var companySeeds = []companySeed{
	{Name: "NebulaStream", Logo: "https://picsum.photos/48/48?random=11", Industry: "Cloud Infrastructure", Website: "nebulastream.io", Desc: "Building the next generation of serverless edge computing for global applications."},
	{Name: "ApexFin", Logo: "https://picsum.photos/48/48?random=12", Industry: "FinTech", Website: "apexfin.tech", Desc: "Democratizing algorithmic trading for the everyday investor."},
	{Name: "FlowSync", Logo: "https://picsum.photos/48/48?random=13", Industry: "Productivity", Website: "flowsync.app", Desc: "Asynchronous communication platform designed for deep work."},
	{Name: "BaseCore", Logo: "https://picsum.photos/48/48?random=14", Industry: "Database", Website: "basecore.db", Desc: "The distributed SQL database built for infinite scale."},
	{Name: "MerchantX", Logo: "https://picsum.photos/48/48?random=15", Industry: "E-commerce", Website: "merchantx.shop", Desc: "Headless commerce API for modern frontend developers."},
	{Name: "IdeaSpace", Logo: "https://picsum.photos/48/48?random=16", Industry: "Productivity", Website: "ideaspace.so", Desc: "Where creative teams organize, brainstorm, and ship."},
	{Name: "RoamStay", Logo: "https://picsum.photos/48/48?random=17", Industry: "Travel", Website: "roamstay.co", Desc: "Subscription living for digital nomads worldwide."},
	{Name: "StreamVibe", Logo: "https://picsum.photos/48/48?random=18", Industry: "Entertainment", Website: "streamvibe.tv", Desc: "Interactive streaming platform for live coding and creative arts."},
	{Name: "TalkHub", Logo: "https://picsum.photos/48/48?random=19", Industry: "Social", Website: "talkhub.chat", Desc: "Privacy-first community platform for professional networks."},
	{Name: "PixelDraft", Logo: "https://picsum.photos/48/48?random=20", Industry: "Design", Website: "pixeldraft.design", Desc: "AI-powered prototyping tool for UI/UX designers."},
}

var roleSeeds = []string{
	"Senior Frontend Engineer", "Backend Developer (Go)", "Product Designer", "DevOps Engineer",
	"Full Stack Developer", "Marketing Manager", "Content Writer", "Data Scientist",
	"Machine Learning Engineer", "Customer Success Lead", "iOS Developer", "Android Developer",
	"Product Manager", "QA Engineer", "Sales Representative",
}

var locationSeeds = []string{
	"Remote (Worldwide)", "Remote (US)", "Remote (EU)", "Remote (APAC)", "Remote (Americas)",
}

var skillSeeds = []string{
	"React", "TypeScript", "Node.js", "Python", "Go", "AWS", "Figma",
	"Kubernetes", "SQL", "Rust", "Next.js", "Tailwind", "GraphQL",
}

var firstNameSeeds = []string{
	"Sarah", "James", "Michael", "Emily", "David", "Emma", "Daniel", "Olivia", "Alex", "Sophia",
}

var lastNameSeeds = []string{
	"Chen", "Smith", "Johnson", "Williams", "Brown", "Jones", "Garcia", "Miller", "Davis", "Rodriguez",
}
