/*
 * Copyright 2021 National Library of Norway.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *       http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package warcstream

const warcinfoRecord = "WARC/0.18\n" +
	"WARC-Type: warcinfo\n" +
	"WARC-Date: 2009-03-65T08:43:19-0800\n" +
	"WARC-Record-ID: <urn:uuid:993d3969-9643-4934-b1c6-68d4dbe55b83>\n" +
	"Content-Type: application/warc-fields\n" +
	"Content-Length: 219\n" +
	"\n" +
	"software: Nutch 1.0-dev (modified for clueweb09)\n" +
	"isPartOf: clueweb09-en\n" +
	"description: clueweb09 crawl with WARC output\n" +
	"format: WARC file version 0.18\n" +
	"conformsTo: http://www.archive.org/documents/WarcFileFormat-0.18.html\n" +
	"\n"

const responseContent = "HTTP/1.1 200 OK\r\n" +
	"Server: lumanau.web.id\r\n" +
	"Date: Fri, 10 Feb 2012 22:27:52 GMT\r\n" +
	"Content-Type: text/plain\r\n" +
	"Connection: close\r\n" +
	"X-Powered-By: PHP/5.3.8\r\n" +
	"Set-Cookie: w3tc_referrer=http%3A%2F%2Frajakarcis.com%2F2012%2F02%2F07%2Fgbh-the-england-legend-punk-rock%2F; path=/cms/\r\n" +
	"Cluster: vm-2\r\n" +
	"\r\n" +
	"XML-RPC server accepts POST requests only."

const responseRecord = "WARC/1.0\r\n" +
	"WARC-Type: response\r\n" +
	"WARC-Date: 2012-02-10T22:27:49Z\r\n" +
	"WARC-TREC-ID: clueweb12-0000tw-00-00055\r\n" +
	"WARC-Target-URI: http://rajakarcis.com/cms/xmlrpc.php\r\n" +
	"WARC-Payload-Digest: sha1:QJ2RUVPQN37T3VVVCHHIUV4IWGVPF6BE\r\n" +
	"WARC-IP-Address: 103.246.184.36\r\n" +
	"WARC-Record-ID: <urn:uuid:5262e3ba-a830-45f2-85ad-cc5c90a213d9>\r\n" +
	"Content-Type: application/http; msgtype=response\r\n" +
	"Content-Length: 329\r\n" +
	"\r\n" +
	responseContent + "\r\n" +
	"\r\n"

func clueweb09Record(n string) string {
	return "WARC/0.18\n" +
		"WARC-Type: response\n" +
		"WARC-Target-URI: http://00000-nrt-realestate.homepagestartup.com/\n" +
		"WARC-Warcinfo-ID: 993d3969-9643-4934-b1c6-68d4dbe55b83\n" +
		"WARC-Date: 2009-03-65T08:43:19-0800\n" +
		"WARC-Record-ID: <urn:uuid:67f7cabd-146c-41cf-bd01-04f5fa7d5229>\n" +
		"WARC-TREC-ID: clueweb09-en0000-00-0000" + n + "\n" +
		"Content-Type: application/http;msgtype=response\n" +
		"Content-Length: 27\n" +
		"\n" +
		"HTTP_HEADER" + n + "\n" +
		"\n" +
		"HTTP_CONTENT" + n
}
