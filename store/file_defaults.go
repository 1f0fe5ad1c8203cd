package store

import "github.com/naborly/naborly/models"

// defaultPosts is the sample feed a fresh posts dataset starts with, newest
// first.
func defaultPosts() []PostDocument {
	return []PostDocument{
		{
			ID:      1,
			User:    "Neha Singh",
			Avatar:  "👩",
			Time:    "2025-10-31 14:20",
			Message: "Looking for recommendations for a good tutor in our area. My daughter needs help with Grade 8 mathematics.",
			Reactions: map[string][]string{
				"👍": {"Amit Kumar", "Saira Khan"},
				"❤️": {"Raj Verma"},
				"🙏": {"Guest User"},
			},
			Comments: []CommentDocument{
				{User: "Saira Khan", Avatar: "👩", Time: "2025-10-31 14:25", Text: "I know a great math tutor! Will DM you the details."},
				{User: "Raj Verma", Avatar: "👨", Time: "2025-10-31 14:30", Text: "My daughter goes to ABC Tutorials near the community hall. They're very good!"},
			},
		},
		{
			ID:      2,
			User:    "Amit Kumar",
			Avatar:  "👨",
			Time:    "2025-10-31 13:05",
			Message: "Found this beautiful sunset view from our community park!",
			Reactions: map[string][]string{
				"👍": {"Neha Singh"},
				"❤️": {"Saira Khan", "Guest User"},
				"🌟": {"Raj Verma"},
			},
			Comments: []CommentDocument{
				{User: "Saira Khan", Avatar: "👩", Time: "2025-10-31 13:10", Text: "Beautiful! We're so lucky to have this park in our ward."},
			},
		},
	}
}

// defaultComplaints is the empty intake log a fresh complaints dataset
// starts with.
func defaultComplaints() []ComplaintDocument {
	return []ComplaintDocument{}
}

// defaultListings is the starter directory a fresh listings dataset ships
// with.
func defaultListings() ListingsDocument {
	return ListingsDocument{
		Providers: []ProviderDocument{
			{Category: "Electrician", Name: "Ramesh Electricals", Contact: "+91-98765-00001", Area: "North Block", Description: "Home wiring, repairs, emergency service"},
			{Category: "Plumber", Name: "Shyam Plumbing", Contact: "+91-98765-00002", Area: "South Block", Description: "Tap repair, leak fixing, bathroom fittings"},
			{Category: "Tuition", Name: "ABC Tutors", Contact: "+91-98765-00003", Area: "Near Community Hall", Description: "Maths and Science tuition for Grades 6-10"},
			{Category: "Housemaid", Name: "Lakshmi Services", Contact: "+91-98765-00004", Area: "Ward 12", Description: "Trusted home staff for daily/weekly help"},
		},
		Vendors: []VendorDocument{
			{Type: "Vegetables", Name: "Green Grocers", Contact: "+91-90000-11111", Area: "Market Street", Notes: "Fresh daily produce"},
			{Type: "Fruits", Name: "Fruit World", Contact: "+91-90000-22222", Area: "Main Road", Notes: "Seasonal fruits and juices"},
		},
	}
}

// defaultBodies is the curated civic office set served when no database is
// present.
func defaultBodies() []models.GovernmentBody {
	return []models.GovernmentBody{
		{Name: "Ward Office (Panchayat)", Department: "Local Administration", Contact: "+91-12345-00001", Hours: "Mon-Fri 10:00-17:00", Location: "Community Hall Complex"},
		{Name: "Electricity Department (Local)", Department: "Electricity", Contact: "+91-12345-00002", Hours: "Mon-Fri 09:30-17:30", Location: "Billing Office, Main Road"},
		{Name: "Water Billing Office", Department: "Water", Contact: "+91-12345-00003", Hours: "Mon-Fri 09:00-16:00", Location: "Ration Shop Complex"},
		{Name: "Anganwadi Center - Block A", Department: "Child Welfare", Contact: "+91-12345-00004", Hours: "Mon-Fri 08:30-13:30", Location: "Block A"},
		{Name: "Public Health Center (PHC)", Department: "Health", Contact: "+91-12345-00005", Hours: "Mon-Sat 09:00-14:00", Location: "Near Main Road"},
	}
}
