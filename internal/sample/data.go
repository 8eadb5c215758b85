package sample

// emailDomain is reserved for documentation, so sample addresses never resolve.
const emailDomain = "example.com"

var firstNames = []string{
	"James", "Mary", "Robert", "Patricia", "John", "Jennifer", "Michael", "Linda",
	"David", "Elizabeth", "William", "Barbara", "Richard", "Susan", "Joseph", "Jessica",
	"Thomas", "Sarah", "Charles", "Karen", "Daniel", "Nancy", "Matthew", "Emily",
	"Andrew", "Donna", "Joshua", "Michelle", "Kevin", "Amanda", "Brian", "Melissa",
}

var lastNames = []string{
	"Smith", "Johnson", "Williams", "Brown", "Jones", "Garcia", "Miller", "Davis",
	"Rodriguez", "Martinez", "Hernandez", "Lopez", "Gonzalez", "Wilson", "Anderson", "Thomas",
	"Taylor", "Moore", "Jackson", "Martin", "Lee", "Perez", "Thompson", "White",
	"Harris", "Sanchez", "Clark", "Ramirez", "Lewis", "Robinson", "Walker", "Young",
}

var cities = []string{
	"Austin", "Boston", "Chicago", "Denver", "Nashville", "Portland",
	"Raleigh", "Sacramento", "Seattle", "Pittsburgh", "Minneapolis", "Tucson",
}

var states = []string{
	"CA", "CO", "IL", "MA", "MN", "NC", "NY", "OR", "PA", "TN", "TX", "WA",
}

var streetNames = []string{
	"Main", "Oak", "Maple", "Cedar", "Elm", "Pine", "Walnut", "Lake",
	"Hill", "Park", "River", "Spring", "Meadow", "Willow", "Birch", "Union",
}

var streetSuffixes = []string{
	"St", "Ave", "Blvd", "Dr", "Ln", "Ct", "Way", "Rd",
}

var institutes = []string{
	"Lakeside State University", "Northbridge Institute of Technology",
	"Riverside Community College", "Westfield University", "Harbor Polytechnic",
	"Summit College of Arts", "Eastgate School of Business", "Pinecrest University",
}

var degrees = []string{
	"B.Sc. Computer Science", "B.A. Economics", "M.Sc. Data Science",
	"B.Eng. Electrical Engineering", "MBA", "Ph.D. Mathematics",
	"A.A. Graphic Design", "M.A. Linguistics",
}

var companies = []string{
	"Acme Corp", "Globex", "Initech", "Umbrella Labs", "Stark Industries",
	"Wayne Enterprises", "Hooli", "Vandelay Industries", "Soylent Systems", "Massive Dynamic",
}

var titles = []string{
	"Software Engineer", "Senior Software Engineer", "Data Analyst", "Product Manager",
	"Site Reliability Engineer", "QA Engineer", "Technical Writer", "Engineering Manager",
}

var skills = []string{
	"Go", "Python", "SQL", "Kubernetes", "Terraform", "React", "C++", "Rust",
	"PostgreSQL", "Linux", "gRPC", "Docker", "AWS", "Public speaking", "Mentoring",
}
