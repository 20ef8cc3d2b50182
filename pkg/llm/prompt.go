package llm

import "strings"

const (
	genTemperature = 0.4
	genMaxTokens   = 1200
)

const systemPrompt = `You are Career Coach AI — an expert assistant that gives personalized career insights based on multiple sources.

Use job trend data, Reddit opinions, news articles, and course suggestions to build a useful and realistic career summary.
`

const userPromptTemplate = `Generate a detailed yet readable career profile for: **{career}**

Format it as follows in **markdown**:

---

## 💼 Career Overview
Brief 2-3 sentence intro about what this career involves.

---

## 📈 Job Outlook
Summarize demand, salary, and trends. Use bullets:
{job_outlook}

---

## 📚 Courses to Get Started
List top courses to learn this field:
{courses}

---

## 🎓 Recommended Majors for College Students
List the most relevant college majors (and closely related fields) that prepare someone for this career:
{majors}

**Sources:**
{majors_sources}

---

## 🛠️ Top 10 Skills Companies Look For
List the top 10 most in-demand technical and soft skills for this role:
{skills}

**Sources:**
{skills_sources}

---

## 📰 Recent Industry News
Show 2-3 bullet points or blurbs:
{news_articles}

---

## 💬 Reddit Insights
Include up to 3 community insights (one specifically on the current job market of that career) with sentiment:
{reddit_posts}

---

## ✅ Final Verdict
Who is this career good for? What are smart next steps? Be clear and practical.

Format with headers, bullets, and links as needed. Be concise, helpful, and positive.`

func buildUserPrompt(req ProfileRequest) string {
	r := strings.NewReplacer(
		"{career}", req.Career,
		"{job_outlook}", req.JobOutlook,
		"{courses}", req.Courses,
		"{majors}", req.Majors,
		"{majors_sources}", req.MajorsSources,
		"{skills}", req.Skills,
		"{skills_sources}", req.SkillsSources,
		"{news_articles}", req.News,
		"{reddit_posts}", req.RedditPosts,
	)
	return r.Replace(userPromptTemplate)
}
