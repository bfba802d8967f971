package curation

// Preamble introduces the serialized collection inside the user message.
const Preamble = "Here is a list of articles organized by domain:"

// DefaultPrompt is the instruction preloaded into the prompt editor. Users
// tweak it per run; it is sent as-is ahead of the serialized collection.
const DefaultPrompt = `The intent of the tech scans is to share the potential relevance and application of technology and knowledge that applies to the four domains (aquaculture, future foods, agriculture and food safety) that will impact Singapore's ecosystem. Please select the top five articles for each domain (food safety, agriculture, aquaculture and future foods) that are most relevant to stakeholders in Singapore's food safety and security. Ensure the recommended articles cover diverse topics, avoiding duplication of subject matter.
Evaluation criteria:
1. Ignore any developments in Singapore as these are likely already known to the stakeholders.
2. Disregard articles that are just think pieces about the potential of technology without any real application.
3. Prioritize articles that highlight specific technological advancements or applications over those that simply discuss emerging risks.
4. Ensure articles are reordered every day to showcase different areas of the domain.

For each article, provide:
1. The article title
2. Embed a hyperlink to the article within the article's title
3. Provide QR code that is 2cm by 2cm that links to the article
4. Retrieve 3 sentences from the article of what is the subject focus, list who are the organisations and the researchers involved, what is the significance of the subject focus in the domain space and its benefits. Provide the complete expansion of the acronym.
5. Retrieve 3 sentences from the article the achievements, challenges and results.
6. Retrieve 2 sentences from the article that includes what are the future steps planned.
7. All sentences phrased in past tense.

Organize the results by domain, clearly labeling each section.`
